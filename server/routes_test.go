// routes_test.go - Tests fuer Router und Resize-Handler
// Nutzt httptest gegen den generierten gin-Router
package server

import (
	"bytes"
	"encoding/json"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/7blacky7/mobinfer/api"
	"github.com/7blacky7/mobinfer/version"
)

// testRouter erstellt einen Router ohne Listener-Adresse (Host-Check inaktiv)
func testRouter() http.Handler {
	s := &Server{}
	return s.GenerateRoutes()
}

// testPNG erzeugt PNG-Bytes eines einfarbigen Bildes
func testPNG(w, h int) []byte {
	rgba := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			rgba.Set(x, y, color.RGBA{10, 20, 30, 255})
		}
	}

	var buf bytes.Buffer
	_ = png.Encode(&buf, rgba)
	return buf.Bytes()
}

func TestVersionHandler(t *testing.T) {
	r := testRouter()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/version", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, erwartet 200", w.Code)
	}

	var resp api.VersionResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("antwort dekodieren fehlgeschlagen: %v", err)
	}
	if resp.Version != version.Version {
		t.Errorf("version = %q, erwartet %q", resp.Version, version.Version)
	}
}

func TestResizeHandler(t *testing.T) {
	r := testRouter()

	body, _ := json.Marshal(api.ResizeRequest{
		Image:  testPNG(8, 8),
		Height: 4,
		Width:  4,
		Mode:   1,
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/api/resize", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, erwartet 200: %s", w.Code, w.Body.String())
	}

	var resp api.ResizeResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("antwort dekodieren fehlgeschlagen: %v", err)
	}

	if want := [4]int{1, 3, 4, 4}; resp.Shape != want {
		t.Errorf("shape = %v, erwartet %v", resp.Shape, want)
	}

	img, err := png.Decode(bytes.NewReader(resp.Image))
	if err != nil {
		t.Fatalf("ergebnis-png dekodieren fehlgeschlagen: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 4 || b.Dy() != 4 {
		t.Errorf("ergebnis-groesse = %dx%d, erwartet 4x4", b.Dx(), b.Dy())
	}
}

func TestResizeHandlerMissingImage(t *testing.T) {
	r := testRouter()

	body, _ := json.Marshal(api.ResizeRequest{Height: 4, Width: 4})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/api/resize", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, erwartet 400", w.Code)
	}
}

func TestResizeHandlerBadSize(t *testing.T) {
	r := testRouter()

	body, _ := json.Marshal(api.ResizeRequest{Image: testPNG(4, 4), Height: -1, Width: 4})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/api/resize", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, erwartet 400", w.Code)
	}
}

func TestResizeHandlerBadMode(t *testing.T) {
	r := testRouter()

	body, _ := json.Marshal(api.ResizeRequest{Image: testPNG(4, 4), Height: 4, Width: 4, Mode: 9})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/api/resize", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, erwartet 400", w.Code)
	}
}

func TestResizeHandlerErrorPayload(t *testing.T) {
	r := testRouter()

	body, _ := json.Marshal(api.ResizeRequest{Height: 4, Width: 4})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/api/resize", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, erwartet 400", w.Code)
	}

	var se api.StatusError
	if err := json.Unmarshal(w.Body.Bytes(), &se); err != nil {
		t.Fatalf("fehler-antwort dekodieren fehlgeschlagen: %v", err)
	}
	if se.ErrorMessage == "" {
		t.Errorf("fehler-payload ohne error-feld: %s", w.Body.String())
	}

	// Code und Status-Text bleiben serverseitig
	var raw map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &raw)
	if _, ok := raw["StatusCode"]; ok {
		t.Error("StatusCode darf nicht im payload stehen")
	}
}

func TestRequestIDHeader(t *testing.T) {
	r := testRouter()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/", nil)
	r.ServeHTTP(w, req)

	if w.Header().Get("X-Request-Id") == "" {
		t.Error("X-Request-Id header fehlt")
	}
}
