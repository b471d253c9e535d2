package client

import (
	"bytes"
	"io"
	"mime"
	"mime/multipart"
	"strings"
	"testing"
)

func TestEncodeMultipartFieldsAndFiles(t *testing.T) {
	reader, contentType, err := encodeMultipart(
		map[string]string{"dataset": "ds_1"},
		[]Upload{{
			FieldName:   "file",
			FileName:    "variants.vcf",
			ContentType: "text/vcf",
			Data:        []byte("##fileformat=VCFv4.2\n"),
		}},
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	mediaType, params, err := mime.ParseMediaType(contentType)
	if err != nil || mediaType != "multipart/form-data" {
		t.Fatalf("unexpected content type %q: %v", contentType, err)
	}

	mr := multipart.NewReader(reader, params["boundary"])
	form, err := mr.ReadForm(1 << 20)
	if err != nil {
		t.Fatalf("read form: %v", err)
	}
	defer form.RemoveAll()

	if got := form.Value["dataset"]; len(got) != 1 || got[0] != "ds_1" {
		t.Errorf("unexpected field: %v", form.Value)
	}
	files := form.File["file"]
	if len(files) != 1 {
		t.Fatalf("expected one file, got %d", len(files))
	}
	if files[0].Filename != "variants.vcf" {
		t.Errorf("unexpected filename: %q", files[0].Filename)
	}
	if ct := files[0].Header.Get("Content-Type"); ct != "text/vcf" {
		t.Errorf("unexpected part content type: %q", ct)
	}
	f, err := files[0].Open()
	if err != nil {
		t.Fatalf("open part: %v", err)
	}
	defer f.Close()
	contents, _ := io.ReadAll(f)
	if !strings.Contains(string(contents), "VCFv4.2") {
		t.Errorf("unexpected part contents: %q", contents)
	}
}

func TestEncodeMultipartStreamingReader(t *testing.T) {
	reader, contentType, err := encodeMultipart(nil, []Upload{{
		FieldName: "file",
		FileName:  "big.tsv",
		Reader:    bytes.NewReader([]byte("streamed")),
	}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, params, _ := mime.ParseMediaType(contentType)
	mr := multipart.NewReader(reader, params["boundary"])
	part, err := mr.NextPart()
	if err != nil {
		t.Fatalf("next part: %v", err)
	}
	contents, _ := io.ReadAll(part)
	if string(contents) != "streamed" {
		t.Errorf("unexpected contents: %q", contents)
	}
}

func TestFormFields(t *testing.T) {
	if fields, err := formFields(nil); err != nil || fields != nil {
		t.Errorf("expected nil fields for nil data, got %v %v", fields, err)
	}

	fields, err := formFields(map[string]string{"a": "b"})
	if err != nil || fields["a"] != "b" {
		t.Errorf("unexpected: %v %v", fields, err)
	}

	fields, err = formFields(map[string]any{"n": 3})
	if err != nil || fields["n"] != "3" {
		t.Errorf("expected stringified values, got %v %v", fields, err)
	}

	if _, err := formFields([]string{"x"}); err == nil {
		t.Error("expected error for non-map body")
	}
}
