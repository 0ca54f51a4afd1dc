package testhelpers

import (
	"context"
	"fmt"
	"math/rand"
	"net"
	"os"
	"path/filepath"
	"time"

	"github.com/samber/lo"
	"github.com/zhulik/namefilter/internal/application"
	"github.com/zhulik/namefilter/internal/client/apiclient"
	"github.com/zhulik/namefilter/internal/core"
	"github.com/zhulik/pal"
)

const startTimeout = 5 * time.Second

type App struct {
	cancelApp context.CancelFunc
	pal       *pal.Pal
	config    *core.Config
	tempDir   string
}

func NewApp() *App {
	ctx, cancelApp := context.WithCancel(context.Background())

	tempDir := lo.Must(os.MkdirTemp("/tmp", "namefilter-"))

	appConfig := &core.Config{
		Environment:               "test",
		FilterBackend:             core.FilterBackendYAML,
		FilterBackendYAMLPath:     filepath.Join(tempDir, "filters.yaml"),
		FilterBackendTmpPath:      filepath.Join(tempDir, "tmp"),
		FilterBackendPollInterval: 50 * time.Millisecond,
		Locker:                    core.LockerLocal,
		RegexCacheSize:            64,
		RegexMatchTimeout:         50 * time.Millisecond,
		Port:                      randomPort(),
		HealthCheckPort:           randomPort(),
	}

	pal := application.NewServer(appConfig)
	lo.Must0(pal.Init(ctx))

	go func() {
		lo.Must0(pal.Run(ctx))
	}()

	waitForPort(appConfig.Port)

	return &App{
		cancelApp: cancelApp,
		pal:       pal,
		config:    appConfig,
		tempDir:   tempDir,
	}
}

func (a *App) Stop(_ context.Context) {
	a.cancelApp()
	lo.Must0(os.RemoveAll(a.tempDir))
}

func (a *App) Client(ctx context.Context) *apiclient.Client {
	client := &apiclient.Client{
		Config: &core.ClientConfig{
			ServerURL: a.ServerURL(),
		},
	}
	lo.Must0(client.Init(ctx))

	return client
}

func (a *App) ServerURL() string {
	return fmt.Sprintf("http://localhost:%d", a.config.Port)
}

// DocumentPath is the YAML file holding all filters.
func (a *App) DocumentPath() string {
	return a.config.FilterBackendYAMLPath
}

func (a *App) FilterBackend(ctx context.Context) core.FilterBackend {
	return pal.MustInvoke[core.FilterBackend](ctx, a.pal)
}

func waitForPort(port int) {
	deadline := time.Now().Add(startTimeout)

	for time.Now().Before(deadline) {
		conn, err := net.DialTimeout("tcp", fmt.Sprintf("localhost:%d", port), 100*time.Millisecond)
		if err == nil {
			_ = conn.Close()

			return
		}

		time.Sleep(10 * time.Millisecond)
	}

	panic(fmt.Sprintf("server did not start listening on port %d", port))
}

func randomPort() int {
	return 10000 + rand.Intn(10000) //nolint:gosec
}
