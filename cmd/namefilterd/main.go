package main

import "github.com/zhulik/namefilter/internal/application"

func main() {
	application.RunServer()
}
