package client

import (
	"testing"
	"time"
)

func baseOptions() Options {
	return Options{
		Headers: map[string]string{
			"Content-Type": "application/json",
			"Accept":       "application/json",
		},
		Timeout: 80 * time.Second,
	}
}

func TestMergeZeroValueKeepsDefaults(t *testing.T) {
	var o Options
	merged := o.merge(baseOptions())

	if merged.Timeout != 80*time.Second {
		t.Errorf("expected default timeout, got %v", merged.Timeout)
	}
	if merged.Headers["Content-Type"] != "application/json" {
		t.Errorf("expected default headers, got %v", merged.Headers)
	}
	if merged.DisableRedirects || merged.Raw || merged.InsecureSkipTLS {
		t.Error("zero options flipped a default flag")
	}
	if merged.Auth != nil || merged.Data != nil || merged.Files != nil || merged.Params != nil {
		t.Error("zero options set a default field")
	}
}

func TestMergeNilReceiverKeepsDefaults(t *testing.T) {
	var o *Options
	merged := o.merge(baseOptions())
	if merged.Timeout != 80*time.Second {
		t.Errorf("expected default timeout, got %v", merged.Timeout)
	}
}

func TestMergeOverridesAreIndependentPerField(t *testing.T) {
	tests := []struct {
		name     string
		override Options
		check    func(t *testing.T, merged Options)
	}{
		{
			"timeout only",
			Options{Timeout: 5 * time.Second},
			func(t *testing.T, m Options) {
				if m.Timeout != 5*time.Second {
					t.Errorf("timeout not overridden: %v", m.Timeout)
				}
				if m.Headers["Accept"] != "application/json" {
					t.Error("unrelated field changed")
				}
			},
		},
		{
			"raw only",
			Options{Raw: true},
			func(t *testing.T, m Options) {
				if !m.Raw {
					t.Error("raw not overridden")
				}
				if m.Timeout != 80*time.Second {
					t.Error("unrelated field changed")
				}
			},
		},
		{
			"auth only",
			Options{Auth: TokenAuth{Token: "tok"}},
			func(t *testing.T, m Options) {
				if m.Auth == nil {
					t.Error("auth not overridden")
				}
			},
		},
		{
			"params only",
			Options{Params: map[string]string{"q": "x"}},
			func(t *testing.T, m Options) {
				if m.Params["q"] != "x" {
					t.Error("params not overridden")
				}
			},
		},
		{
			"header overlay keeps untouched keys",
			Options{Headers: map[string]string{"Accept": "text/csv"}},
			func(t *testing.T, m Options) {
				if m.Headers["Accept"] != "text/csv" {
					t.Error("header not overridden")
				}
				if m.Headers["Content-Type"] != "application/json" {
					t.Error("untouched header lost")
				}
			},
		},
		{
			"redirect flag only",
			Options{DisableRedirects: true},
			func(t *testing.T, m Options) {
				if !m.DisableRedirects {
					t.Error("flag not overridden")
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			merged := tt.override.merge(baseOptions())
			tt.check(t, merged)
		})
	}
}

func TestMergeDoesNotTouchOverrideHeaders(t *testing.T) {
	override := Options{Headers: map[string]string{"Accept": "text/csv"}}
	merged := override.merge(baseOptions())

	merged.Headers["Accept"] = "changed"
	if override.Headers["Accept"] != "text/csv" {
		t.Error("merge aliased the caller's header map")
	}
}
