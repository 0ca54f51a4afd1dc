package s3_test

import (
	"context"
	"errors"
	"log/slog"
	"net/http/httptest"
	"strings"

	"github.com/johannesboyne/gofakes3"
	"github.com/johannesboyne/gofakes3/backend/s3mem"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/samber/lo"

	"github.com/zhulik/namefilter/internal/backends/filters/s3"
	"github.com/zhulik/namefilter/internal/core"
	"github.com/zhulik/namefilter/internal/locker"
)

var _ = Describe("Store", func() {
	var (
		server *httptest.Server
		store  *s3.Store
	)

	set := func(content string) core.DocumentMapFunc {
		return func(_ context.Context, _ []byte) ([]byte, error) {
			return []byte(content), nil
		}
	}

	BeforeEach(func(ctx context.Context) {
		server = httptest.NewServer(gofakes3.New(s3mem.New()).Server())

		store = &s3.Store{
			Config: &core.Config{
				FilterBackendS3Endpoint:        strings.TrimPrefix(server.URL, "http://"),
				FilterBackendS3Region:          "us-east-1",
				FilterBackendS3Bucket:          "namefilter",
				FilterBackendS3Key:             "filters.yaml",
				FilterBackendS3AccessKeyID:     "test",
				FilterBackendS3SecretAccessKey: "test",
			},
			Locker: &locker.LocalLocker{},
			Logger: slog.New(slog.DiscardHandler),
		}

		Expect(store.Init(ctx)).To(Succeed())
	})

	AfterEach(func() {
		server.Close()
	})

	It("tolerates an existing bucket", func(ctx context.Context) {
		Expect(store.Init(ctx)).To(Succeed())
	})

	It("loads a missing document as empty", func(ctx context.Context) {
		content, revision, err := store.Load(ctx)
		Expect(err).NotTo(HaveOccurred())
		Expect(content).To(BeEmpty())
		Expect(revision).To(BeEmpty())

		revision, err = store.Revision(ctx)
		Expect(err).NotTo(HaveOccurred())
		Expect(revision).To(BeEmpty())
	})

	It("writes and reads the document", func(ctx context.Context) {
		Expect(store.Update(ctx, set("version: 1\n"))).To(Succeed())

		content, revision, err := store.Load(ctx)
		Expect(err).NotTo(HaveOccurred())
		Expect(string(content)).To(Equal("version: 1\n"))
		Expect(revision).NotTo(BeEmpty())
		Expect(lo.Must(store.Revision(ctx))).To(Equal(revision))
	})

	It("changes the revision when the content changes", func(ctx context.Context) {
		Expect(store.Update(ctx, set("version: 1\n"))).To(Succeed())
		before := lo.Must(store.Revision(ctx))

		Expect(store.Update(ctx, set("version: 1\nfilters: {}\n"))).To(Succeed())
		Expect(lo.Must(store.Revision(ctx))).NotTo(Equal(before))
	})

	It("keeps the document when the update function fails", func(ctx context.Context) {
		Expect(store.Update(ctx, set("first"))).To(Succeed())

		errBoom := errors.New("boom")
		Expect(store.Update(ctx, func(_ context.Context, _ []byte) ([]byte, error) {
			return nil, errBoom
		})).To(MatchError(errBoom))

		content, _, err := store.Load(ctx)
		Expect(err).NotTo(HaveOccurred())
		Expect(string(content)).To(Equal("first"))
	})
})
