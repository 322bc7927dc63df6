package restyutil

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-resty/resty/v2"
)

// FilesystemOutput writes one transcript file per message id into a
// directory, wiping whatever a previous run left there.
type FilesystemOutput struct {
	directory string
}

func NewFilesystemOutput(dir string) FilesystemOutput {
	os.RemoveAll(dir)
	err := os.MkdirAll(dir, 0777)
	if err != nil {
		panic(err)
	}
	return FilesystemOutput{directory: dir}
}

func (o FilesystemOutput) Write(id string, contents string) {
	err := os.WriteFile(filepath.Join(o.directory, id+".http"), []byte(contents), 0600)
	if err != nil {
		slog.Warn("failed to write transcript", "id", id, "err", err)
	}
}

// renders the full request/response exchange so selector problems can
// be debugged against exactly what the site served
func formatTranscript(res *resty.Response) string {
	var out strings.Builder
	req := res.Request

	fmt.Fprintf(&out, "---- REQUEST ----\n\n%s %s\n\n", req.Method, req.URL)
	writeHeaders(&out, req.RawRequest.Header)
	fmt.Fprintf(&out, "\n%s\n", requestBody(req.RawRequest))

	finalUrl := req.URL
	redirected, err := res.RawResponse.Location()
	if err == nil {
		finalUrl = redirected.String()
	}

	fmt.Fprintf(&out, "\n---- RESPONSE ----\n\n%d %s\n\n", res.StatusCode(), finalUrl)
	writeHeaders(&out, res.Header())
	fmt.Fprintf(&out, "\n%s\n", res.String())

	return out.String()
}

func writeHeaders(out *strings.Builder, headers http.Header) {
	for key, values := range headers {
		for _, value := range values {
			fmt.Fprintf(out, "%s: %s\n", key, value)
		}
	}
}

func requestBody(req *http.Request) string {
	if req.GetBody == nil {
		return ""
	}
	body, err := req.GetBody()
	if err != nil {
		return fmt.Sprintf("failed to get request body: %s", err)
	}
	buf, err := io.ReadAll(body)
	if err != nil {
		return fmt.Sprintf("failed to read request body: %s", err)
	}
	return string(buf)
}
