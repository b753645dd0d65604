package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestParseCanonicalConfig(t *testing.T) {
	data, err := os.ReadFile(filepath.Join("testdata", "config.yaml"))
	if err != nil {
		t.Fatalf("read canonical config: %v", err)
	}
	doc, err := Parse(data)
	if err != nil {
		t.Fatalf("parse canonical config: %v", err)
	}
	key, ok := doc.Lookup(JWTSection, JWTKey)
	if !ok || key != "old" {
		t.Fatalf("jwt.key = %q, %t", key, ok)
	}
	host, ok := doc.Lookup("server_address", "host")
	if !ok || host != "0.0.0.0" {
		t.Fatalf("server_address.host = %q, %t", host, ok)
	}
	if _, ok := doc.Lookup("jwt"); ok {
		t.Fatalf("expected mapping lookup to report no scalar")
	}
}

func TestParseEmptyDocument(t *testing.T) {
	doc, err := Parse(nil)
	if err != nil {
		t.Fatalf("parse empty: %v", err)
	}
	_, err = doc.SetString("x", JWTSection, JWTKey)
	if !errors.Is(err, ErrMissingSection) {
		t.Fatalf("err = %v, want ErrMissingSection", err)
	}
}

func TestParseRejectsMalformed(t *testing.T) {
	for _, input := range []string{"jwt: [unclosed", "key: value\n  bad: indent\n", "- a\n- b\n", "just a scalar"} {
		if _, err := Parse([]byte(input)); !errors.Is(err, ErrParse) {
			t.Fatalf("Parse(%q) err = %v, want ErrParse", input, err)
		}
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected wrapped os.ErrNotExist, got %v", err)
	}
}

func TestSetStringReplacesAndPreservesLayout(t *testing.T) {
	data, err := os.ReadFile(filepath.Join("testdata", "config.yaml"))
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	doc, err := Parse(data)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	replaced, err := doc.SetString("new-value", JWTSection, JWTKey)
	if err != nil {
		t.Fatalf("set: %v", err)
	}
	if !replaced {
		t.Fatalf("expected replaced=true")
	}
	out, err := doc.Marshal()
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	text := string(out)
	for _, want := range []string{"# Signing key for HS256 tokens.", "# rotated by jwtkey", `key: "new-value"`, "issuer: x"} {
		if !strings.Contains(text, want) {
			t.Fatalf("output missing %q:\n%s", want, text)
		}
	}
	order := []string{"connect_db_params:", "server_address:", "jwt:", "connect_redis_params:"}
	last := -1
	for _, key := range order {
		idx := strings.Index(text, key)
		if idx <= last {
			t.Fatalf("key order changed at %s:\n%s", key, text)
		}
		last = idx
	}
}

func TestSetStringKeepsOtherValues(t *testing.T) {
	doc, err := Parse([]byte("jwt:\n  key: abc\n  issuer: x\nserver:\n  port: 8080\n"))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if _, err := doc.SetString("fresh", JWTSection, JWTKey); err != nil {
		t.Fatalf("set: %v", err)
	}
	out, err := doc.Marshal()
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var got map[string]any
	if err := yaml.Unmarshal(out, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	jwt := got["jwt"].(map[string]any)
	if jwt["key"] != "fresh" || jwt["issuer"] != "x" {
		t.Fatalf("jwt = %#v", jwt)
	}
	if got["server"].(map[string]any)["port"] != 8080 {
		t.Fatalf("server = %#v", got["server"])
	}
}

func TestSetStringAddsMissingKey(t *testing.T) {
	doc, err := Parse([]byte("jwt:\n  issuer: x\n"))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	replaced, err := doc.SetString("fresh", JWTSection, JWTKey)
	if err != nil {
		t.Fatalf("set: %v", err)
	}
	if replaced {
		t.Fatalf("expected replaced=false for added key")
	}
	if v, ok := doc.Lookup(JWTSection, JWTKey); !ok || v != "fresh" {
		t.Fatalf("jwt.key = %q, %t", v, ok)
	}
}

func TestSetStringEmptyValueNotReplaced(t *testing.T) {
	for _, input := range []string{"jwt:\n  key:\n", "jwt:\n  key: \"\"\n", "jwt:\n  key: ~\n"} {
		doc, err := Parse([]byte(input))
		if err != nil {
			t.Fatalf("parse %q: %v", input, err)
		}
		replaced, err := doc.SetString("fresh", JWTSection, JWTKey)
		if err != nil {
			t.Fatalf("set %q: %v", input, err)
		}
		if replaced {
			t.Fatalf("expected replaced=false for %q", input)
		}
	}
}

func TestSetStringMissingSection(t *testing.T) {
	for _, input := range []string{"server:\n  port: 1\n", "jwt: plain\n", "jwt:\n  - key\n", "jwt:\n"} {
		doc, err := Parse([]byte(input))
		if err != nil {
			t.Fatalf("parse %q: %v", input, err)
		}
		if _, err := doc.SetString("fresh", JWTSection, JWTKey); !errors.Is(err, ErrMissingSection) {
			t.Fatalf("set %q err = %v, want ErrMissingSection", input, err)
		}
	}
}

func TestSetStringDoesNotRewriteAnchors(t *testing.T) {
	input := "defaults:\n  secret: &shared shared-value\njwt:\n  key: *shared\n"
	doc, err := Parse([]byte(input))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if _, err := doc.SetString("fresh", JWTSection, JWTKey); err != nil {
		t.Fatalf("set: %v", err)
	}
	if v, _ := doc.Lookup("defaults", "secret"); v != "shared-value" {
		t.Fatalf("anchored value changed to %q", v)
	}
	if v, _ := doc.Lookup(JWTSection, JWTKey); v != "fresh" {
		t.Fatalf("jwt.key = %q", v)
	}
}

func TestParseRejectsMultipleDocuments(t *testing.T) {
	for _, input := range []string{
		"jwt:\n  key: old\n---\ndatabase:\n  password: keepme\n",
		"jwt:\n  key: old\n---\n",
	} {
		if _, err := Parse([]byte(input)); !errors.Is(err, ErrParse) {
			t.Fatalf("Parse(%q) err = %v, want ErrParse", input, err)
		}
	}
	if _, err := Parse([]byte("---\njwt:\n  key: old\n")); err != nil {
		t.Fatalf("single explicit document: %v", err)
	}
}

func TestDuplicateKeysRejected(t *testing.T) {
	if _, err := Parse([]byte("jwt:\n  key: a\njwt:\n  key: b\n")); !errors.Is(err, ErrParse) {
		t.Fatalf("duplicate top-level err = %v, want ErrParse", err)
	}

	doc, err := Parse([]byte("jwt:\n  key: old\n  key: older\n"))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if err := doc.RequireSection(JWTSection); !errors.Is(err, ErrParse) {
		t.Fatalf("require err = %v, want ErrParse", err)
	}
	if _, err := doc.SetString("fresh", JWTSection, JWTKey); !errors.Is(err, ErrParse) {
		t.Fatalf("set err = %v, want ErrParse", err)
	}
}

func TestHasValue(t *testing.T) {
	doc, err := Parse([]byte("jwt:\n  key:\n    nested: x\n  empty: \"\"\n  null: ~\n  list: [a]\n  plain: v\n"))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	for key, want := range map[string]bool{
		"key":     true,
		"list":    true,
		"plain":   true,
		"empty":   false,
		"null":    false,
		"missing": false,
	} {
		if got := doc.HasValue(JWTSection, key); got != want {
			t.Fatalf("HasValue(jwt.%s) = %t, want %t", key, got, want)
		}
	}
	replaced, err := doc.SetString("fresh", JWTSection, JWTKey)
	if err != nil || !replaced {
		t.Fatalf("set over mapping: replaced=%t err=%v", replaced, err)
	}
}
