package handler

import (
	"bytes"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"cv-ranking-web/internal/service"
	"cv-ranking-web/internal/session"
)

// fakeRemote stands in for the external upload and ranking service.
type fakeRemote struct {
	mu            sync.Mutex
	uploadStatus  int
	rankingStatus int
	rankingBody   string
	uploads       []string // filenames received
	uploadBodies  []string
	rankingCalls  int
}

func (f *fakeRemote) set(fn func(f *fakeRemote)) {
	f.mu.Lock()
	defer f.mu.Unlock()
	fn(f)
}

func (f *fakeRemote) snapshot() (uploads []string, bodies []string, rankingCalls int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.uploads...), append([]string(nil), f.uploadBodies...), f.rankingCalls
}

func (f *fakeRemote) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	switch r.URL.Path {
	case "/upload":
		file, header, err := r.FormFile("file")
		if err == nil {
			data, _ := io.ReadAll(file)
			file.Close()
			f.uploads = append(f.uploads, header.Filename)
			f.uploadBodies = append(f.uploadBodies, string(data))
		}
		w.WriteHeader(f.uploadStatus)
	case "/ranking":
		f.rankingCalls++
		w.WriteHeader(f.rankingStatus)
		_, _ = w.Write([]byte(f.rankingBody))
	default:
		w.WriteHeader(http.StatusNotFound)
	}
}

type testApp struct {
	remote    *fakeRemote
	remoteURL string
	server    *httptest.Server
	store     *session.Store
}

func newTestApp(t *testing.T, maxFileSize int64) *testApp {
	t.Helper()
	return newCappedTestApp(t, maxFileSize, 100)
}

func newCappedTestApp(t *testing.T, maxFileSize int64, maxPages int) *testApp {
	t.Helper()

	remote := &fakeRemote{
		uploadStatus:  http.StatusOK,
		rankingStatus: http.StatusOK,
		rankingBody:   `[]`,
	}
	remoteSrv := httptest.NewServer(remote)
	t.Cleanup(remoteSrv.Close)

	logger := NewMockHandlerLogger()
	httpClient := service.NewHTTPClient(2 * time.Second)
	uploadService := service.NewUploadService(remoteSrv.URL+"/upload", httpClient, logger)
	rankingService := service.NewRankingService(remoteSrv.URL+"/ranking", httpClient, logger)
	store := session.NewStore(uploadService, rankingService, time.Hour, maxPages, logger)

	router := NewRouter(
		NewPageHandler(maxFileSize, logger),
		NewAPIHandler(maxFileSize, logger),
		NewSessionMiddleware(store, logger, false).Middleware,
		[]string{"http://localhost:3000"},
		logger,
	)
	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	return &testApp{remote: remote, remoteURL: remoteSrv.URL, server: srv, store: store}
}

// newBrowser returns a client that keeps cookies and follows redirects.
func (a *testApp) newBrowser(t *testing.T) *http.Client {
	t.Helper()
	jar, err := cookiejar.New(nil)
	if err != nil {
		t.Fatalf("cookie jar: %v", err)
	}
	return &http.Client{Jar: jar, Timeout: 5 * time.Second}
}

func multipartBody(t *testing.T, filename string, content []byte) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	if filename != "" {
		part, err := writer.CreateFormFile("file", filename)
		if err != nil {
			t.Fatalf("create form file: %v", err)
		}
		_, _ = part.Write(content)
	} else {
		_ = writer.WriteField("note", "no file chosen")
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}
	return body, writer.FormDataContentType()
}

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return string(data)
}
