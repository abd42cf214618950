package mod

import "testing"

func TestTemplateEngineResolvesDependencyOrder(t *testing.T) {
	e, err := newTemplateEngine(map[string]string{
		"full_name": "{{.greeting}}, world",
		"greeting":  "hello",
	})
	if err != nil {
		t.Fatalf("newTemplateEngine failed: %v", err)
	}
	if e.defines["full_name"] != "hello, world" {
		t.Errorf("full_name = %q", e.defines["full_name"])
	}
}

func TestTemplateEngineDetectsCycle(t *testing.T) {
	_, err := newTemplateEngine(map[string]string{
		"a": "{{.b}}",
		"b": "{{.a}}",
	})
	if err == nil {
		t.Fatal("want cycle error")
	}
}

func TestTemplateEngineRenderPassesThroughPlainText(t *testing.T) {
	e, err := newTemplateEngine(nil)
	if err != nil {
		t.Fatalf("newTemplateEngine failed: %v", err)
	}
	out, err := e.render("x", "no templating here")
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if out != "no templating here" {
		t.Errorf("render = %q", out)
	}
}

func TestTemplateEngineMissingKeyErrors(t *testing.T) {
	e, err := newTemplateEngine(nil)
	if err != nil {
		t.Fatalf("newTemplateEngine failed: %v", err)
	}
	if _, err := e.render("x", "{{.undefined}}"); err == nil {
		t.Fatal("want error for missing key")
	}
}
