package splithttp_test

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/yourname/audiosplit_lite/internal/app/splithttp"
	"github.com/yourname/audiosplit_lite/internal/config"
)

// stubScript изображает ffmpeg: три сегмента, каждый содержит копию входа.
const stubScript = `#!/bin/sh
input=""
pattern=""
while [ $# -gt 0 ]; do
  case "$1" in
    -version) echo "ffmpeg version 6.1.1-stub"; exit 0 ;;
    -i) input="$2"; shift 2 ;;
    -f|-segment_time|-c) shift 2 ;;
    -y) shift ;;
    *) pattern="$1"; shift ;;
  esac
done
[ -f "$input" ] || { echo "no such input" >&2; exit 1; }
i=0
while [ $i -lt 3 ]; do
  cat "$input" > "$(printf "$pattern" "$i")"
  i=$((i+1))
done
`

type splitResponse struct {
	Success      bool   `json:"success"`
	TotalChunks  int    `json:"totalChunks"`
	OriginalSize int64  `json:"originalSize"`
	Message      string `json:"message"`
	Chunks       []struct {
		Index    int    `json:"index"`
		Data     string `json:"data"`
		FileName string `json:"fileName"`
		Size     int64  `json:"size"`
	} `json:"chunks"`
}

func newTestServer(t *testing.T, ffmpegBin string) *httptest.Server {
	t.Helper()

	cfg := &config.Config{
		ListenAddr: ":0",
		WorkDir:    t.TempDir(),
		FFmpegBin:  ffmpegBin,
	}
	cfg.ApplyDefaults()

	handler, _, err := splithttp.NewServer(cfg)
	if err != nil {
		t.Fatalf("new server: %v", err)
	}

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv
}

func writeStubFFmpeg(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ffmpeg-stub")
	if err := os.WriteFile(path, []byte(stubScript), 0o755); err != nil {
		t.Fatal(err)
	}
	return path
}

func uploadMultipart(t *testing.T, url, filename string, content []byte) *http.Response {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", filename)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := fw.Write(content); err != nil {
		t.Fatal(err)
	}
	if err := mw.Close(); err != nil {
		t.Fatal(err)
	}

	resp, err := http.Post(url+"/split", mw.FormDataContentType(), &buf)
	if err != nil {
		t.Fatal(err)
	}
	return resp
}

func TestSplitEndpoint(t *testing.T) {
	srv := newTestServer(t, writeStubFFmpeg(t))

	payload := bytes.Repeat([]byte("audio-frame "), 256)
	resp := uploadMultipart(t, srv.URL, "lecture.m4a", payload)
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		t.Fatalf("split status %s: %s", resp.Status, string(body))
	}

	var out splitResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatal(err)
	}

	if !out.Success {
		t.Fatalf("success=false: %s", out.Message)
	}
	if out.TotalChunks != 3 || len(out.Chunks) != 3 {
		t.Fatalf("want 3 chunks, got totalChunks=%d len=%d", out.TotalChunks, len(out.Chunks))
	}
	if out.OriginalSize != int64(len(payload)) {
		t.Fatalf("originalSize %d, want %d", out.OriginalSize, len(payload))
	}

	for i, chunk := range out.Chunks {
		if chunk.Index != i {
			t.Fatalf("chunk %d has index %d", i, chunk.Index)
		}
		decoded, err := base64.StdEncoding.DecodeString(chunk.Data)
		if err != nil {
			t.Fatalf("chunk %d: bad base64: %v", i, err)
		}
		if !bytes.Equal(decoded, payload) {
			t.Fatalf("chunk %d data mismatch", i)
		}
		if chunk.Size != int64(len(decoded)) {
			t.Fatalf("chunk %d size %d, want %d", i, chunk.Size, len(decoded))
		}
		if i > 0 && out.Chunks[i-1].FileName >= chunk.FileName {
			t.Fatalf("file names out of order: %q then %q", out.Chunks[i-1].FileName, chunk.FileName)
		}
	}
}

func TestSplitEndpoint_MissingFileField(t *testing.T) {
	srv := newTestServer(t, writeStubFFmpeg(t))

	resp, err := http.Post(srv.URL+"/split", "application/json", strings.NewReader("{}"))
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("want 400, got %s", resp.Status)
	}

	var body struct {
		Detail string `json:"detail"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatal(err)
	}
	if body.Detail == "" {
		t.Fatalf("empty detail in error body")
	}
}

func TestSplitEndpoint_ToolFailure(t *testing.T) {
	bin := filepath.Join(t.TempDir(), "ffmpeg-broken")
	if err := os.WriteFile(bin, []byte("#!/bin/sh\necho 'invalid data found' >&2\nexit 1\n"), 0o755); err != nil {
		t.Fatal(err)
	}
	srv := newTestServer(t, bin)

	resp := uploadMultipart(t, srv.URL, "bad.m4a", []byte("not audio"))
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusInternalServerError {
		t.Fatalf("want 500, got %s", resp.Status)
	}

	var body struct {
		Detail string `json:"detail"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(body.Detail, "invalid data found") {
		t.Fatalf("detail lacks tool diagnostic: %q", body.Detail)
	}
}

func TestHealthEndpoint(t *testing.T) {
	srv := newTestServer(t, writeStubFFmpeg(t))

	resp, err := http.Get(srv.URL + "/health")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	var body struct {
		Status        string `json:"status"`
		FFmpeg        string `json:"ffmpeg"`
		FFmpegVersion string `json:"ffmpeg_version"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatal(err)
	}
	if body.Status != "healthy" || body.FFmpeg != "available" {
		t.Fatalf("unexpected health: %+v", body)
	}
	if !strings.HasPrefix(body.FFmpegVersion, "ffmpeg version") {
		t.Fatalf("unexpected version line %q", body.FFmpegVersion)
	}
}

func TestHealthEndpoint_ToolMissing(t *testing.T) {
	srv := newTestServer(t, filepath.Join(t.TempDir(), "no-such-ffmpeg"))

	resp, err := http.Get(srv.URL + "/health")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	var body struct {
		Status string `json:"status"`
		FFmpeg string `json:"ffmpeg"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatal(err)
	}
	if body.Status != "unhealthy" || body.FFmpeg != "not available" {
		t.Fatalf("unexpected health: %+v", body)
	}
}

func TestRootEndpoint(t *testing.T) {
	srv := newTestServer(t, writeStubFFmpeg(t))

	resp, err := http.Get(srv.URL + "/")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	b, _ := io.ReadAll(resp.Body)
	if !bytes.Contains(b, []byte("POST /split")) {
		t.Fatalf("service banner lacks endpoints: %s", string(b))
	}
}

func TestHistoryAndMetricsEndpoints(t *testing.T) {
	srv := newTestServer(t, writeStubFFmpeg(t))

	resp := uploadMultipart(t, srv.URL, "one.m4a", []byte("payload"))
	_ = resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("split status %s", resp.Status)
	}

	resp, err := http.Get(srv.URL + "/admin/history?limit=10")
	if err != nil {
		t.Fatal(err)
	}
	var hist struct {
		Count   int `json:"count"`
		Records []struct {
			FileName    string `json:"file_name"`
			TotalChunks int    `json:"total_chunks"`
			Success     bool   `json:"success"`
		} `json:"records"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&hist); err != nil {
		t.Fatal(err)
	}
	_ = resp.Body.Close()
	if hist.Count != 1 || len(hist.Records) != 1 {
		t.Fatalf("want 1 history record, got %d", hist.Count)
	}
	if !hist.Records[0].Success || hist.Records[0].TotalChunks != 3 {
		t.Fatalf("unexpected record: %+v", hist.Records[0])
	}

	resp, err = http.Get(srv.URL + "/metrics")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	b, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("metrics status %s", resp.Status)
	}
	if !bytes.Contains(b, []byte("audiosplit_splits_total")) {
		t.Fatalf("metrics output lacks split counter:\n%s", firstLines(string(b), 10))
	}
}

func firstLines(s string, n int) string {
	lines := strings.SplitN(s, "\n", n+1)
	if len(lines) > n {
		lines = lines[:n]
	}
	return strings.Join(lines, "\n")
}
