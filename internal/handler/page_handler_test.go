package handler

import (
	"net/http"
	"strings"
	"testing"
)

func TestPageHandler_IndexRendersBothWidgets(t *testing.T) {
	app := newTestApp(t, 1024)
	browser := app.newBrowser(t)

	resp, err := browser.Get(app.server.URL + "/")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	body := readBody(t, resp)

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	for _, want := range []string{"Upload PDF", "Ranking", "Pobierz dane", "<th>Imię</th><th>Nazwisko</th><th>Punkty</th>"} {
		if !strings.Contains(body, want) {
			t.Fatalf("expected %q in page:\n%s", want, body)
		}
	}
	if strings.Contains(body, "<td>") {
		t.Fatalf("expected no rows before the first fetch")
	}

	if len(resp.Cookies()) != 0 {
		t.Fatalf("expected no session cookie before the first action")
	}
	if app.store.Len() != 0 {
		t.Fatalf("expected viewing the page not to store a session, got %d", app.store.Len())
	}
}

func TestPageHandler_FirstActionIssuesCookie(t *testing.T) {
	app := newTestApp(t, 1024)

	req, _ := http.NewRequest(http.MethodPost, app.server.URL+"/ranking", nil)
	resp, err := http.DefaultTransport.RoundTrip(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	readBody(t, resp)

	var found bool
	for _, c := range resp.Cookies() {
		if c.Name == SessionCookieName && c.HttpOnly {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected an HTTP-only session cookie")
	}
	if resp.StatusCode != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", resp.StatusCode)
	}
	if app.store.Len() != 1 {
		t.Fatalf("expected one stored session, got %d", app.store.Len())
	}
}

func TestPageHandler_FetchRankingRendersRows(t *testing.T) {
	app := newTestApp(t, 1024)
	app.remote.set(func(f *fakeRemote) {
		f.rankingBody = `[{"imie":"Anna","nazwisko":"Kowalska","punkty":10}]`
	})
	browser := app.newBrowser(t)

	resp, err := browser.Post(app.server.URL+"/ranking", "application/x-www-form-urlencoded", nil)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	body := readBody(t, resp)

	if strings.Count(body, "<tr><td>") != 1 {
		t.Fatalf("expected exactly one row:\n%s", body)
	}
	if !strings.Contains(body, "<tr><td>Anna</td><td>Kowalska</td><td>10</td></tr>") {
		t.Fatalf("unexpected row rendering:\n%s", body)
	}
	if !strings.Contains(body, "Dane pobrane pomyślnie!") {
		t.Fatalf("expected success message:\n%s", body)
	}
}

func TestPageHandler_StringScoreRendered(t *testing.T) {
	app := newTestApp(t, 1024)
	app.remote.set(func(f *fakeRemote) {
		f.rankingBody = `[{"imie":"Anna","nazwisko":"Kowalska","punkty":"10"}]`
	})
	browser := app.newBrowser(t)

	resp, err := browser.Post(app.server.URL+"/ranking", "", nil)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	body := readBody(t, resp)

	if !strings.Contains(body, "<tr><td>Anna</td><td>Kowalska</td><td>10</td></tr>") {
		t.Fatalf("expected the row to be rendered:\n%s", body)
	}
	if !strings.Contains(body, "Dane pobrane pomyślnie!") {
		t.Fatalf("expected success message:\n%s", body)
	}
}

func TestPageHandler_FetchFailureKeepsTable(t *testing.T) {
	app := newTestApp(t, 1024)
	app.remote.set(func(f *fakeRemote) {
		f.rankingBody = `[{"imie":"Anna","nazwisko":"Kowalska","punkty":10}]`
	})
	browser := app.newBrowser(t)

	resp, err := browser.Post(app.server.URL+"/ranking", "", nil)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	readBody(t, resp)

	app.remote.set(func(f *fakeRemote) { f.rankingStatus = http.StatusServiceUnavailable })
	resp, err = browser.Post(app.server.URL+"/ranking", "", nil)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	body := readBody(t, resp)

	if !strings.Contains(body, "<td>Anna</td>") {
		t.Fatalf("expected previous table to be kept:\n%s", body)
	}
	if !strings.Contains(body, "Błąd podczas pobierania danych.") {
		t.Fatalf("expected failure message:\n%s", body)
	}
	if !strings.Contains(body, `title="server error: HTTP 503"`) {
		t.Fatalf("expected diagnostic detail:\n%s", body)
	}
}

func TestPageHandler_UploadWithoutFile(t *testing.T) {
	app := newTestApp(t, 1024)
	browser := app.newBrowser(t)

	body, contentType := multipartBody(t, "", nil)
	resp, err := browser.Post(app.server.URL+"/upload", contentType, body)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	page := readBody(t, resp)

	if !strings.Contains(page, "Please select a file first.") {
		t.Fatalf("expected no-file message:\n%s", page)
	}
	if uploads, _, _ := app.remote.snapshot(); len(uploads) != 0 {
		t.Fatalf("expected no upload request, got %v", uploads)
	}
}

func TestPageHandler_UploadSuccess(t *testing.T) {
	app := newTestApp(t, 1024)
	app.remote.set(func(f *fakeRemote) { f.uploadStatus = http.StatusAccepted })
	browser := app.newBrowser(t)

	body, contentType := multipartBody(t, "cv.pdf", []byte("%PDF-1.4 hello"))
	resp, err := browser.Post(app.server.URL+"/upload", contentType, body)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	page := readBody(t, resp)

	if !strings.Contains(page, "File uploaded successfully!") {
		t.Fatalf("expected success message:\n%s", page)
	}
	uploads, bodies, _ := app.remote.snapshot()
	if len(uploads) != 1 || uploads[0] != "cv.pdf" || bodies[0] != "%PDF-1.4 hello" {
		t.Fatalf("unexpected remote uploads %v %v", uploads, bodies)
	}
}

func TestPageHandler_UploadFailure(t *testing.T) {
	app := newTestApp(t, 1024)
	app.remote.set(func(f *fakeRemote) { f.uploadStatus = http.StatusInternalServerError })
	browser := app.newBrowser(t)

	body, contentType := multipartBody(t, "cv.pdf", []byte("data"))
	resp, err := browser.Post(app.server.URL+"/upload", contentType, body)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	page := readBody(t, resp)

	if !strings.Contains(page, "Failed to upload file.") {
		t.Fatalf("expected failure message:\n%s", page)
	}
	if strings.Contains(page, "File uploaded successfully!") {
		t.Fatalf("failure must not show the success message")
	}
	// The file stays selected for a retry.
	if !strings.Contains(page, `<p class="selected">cv.pdf</p>`) {
		t.Fatalf("expected selection to be shown:\n%s", page)
	}
}

func TestPageHandler_UploadTooLarge(t *testing.T) {
	app := newTestApp(t, 8)
	browser := app.newBrowser(t)

	body, contentType := multipartBody(t, "big.pdf", []byte("0123456789abcdef"))
	resp, err := browser.Post(app.server.URL+"/upload", contentType, body)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	page := readBody(t, resp)

	if !strings.Contains(page, "Failed to upload file.") {
		t.Fatalf("expected failure message:\n%s", page)
	}
	if uploads, _, _ := app.remote.snapshot(); len(uploads) != 0 {
		t.Fatalf("expected no upload request, got %v", uploads)
	}
}

func TestPageHandler_VisitorsAreIsolated(t *testing.T) {
	app := newTestApp(t, 1024)
	app.remote.set(func(f *fakeRemote) {
		f.rankingBody = `[{"imie":"Anna","nazwisko":"Kowalska","punkty":10}]`
	})

	alice := app.newBrowser(t)
	bob := app.newBrowser(t)

	resp, err := alice.Post(app.server.URL+"/ranking", "", nil)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	readBody(t, resp)

	resp, err = bob.Get(app.server.URL + "/")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	page := readBody(t, resp)

	if strings.Contains(page, "<td>Anna</td>") || strings.Contains(page, "Dane pobrane") {
		t.Fatalf("expected the other visitor's page to be untouched:\n%s", page)
	}
	if app.store.Len() != 1 {
		t.Fatalf("expected only the visitor who acted to have a session, got %d", app.store.Len())
	}
}
