package email

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderRegisteredTemplate(t *testing.T) {
	tm := NewTemplateManager()
	require.NoError(t, tm.AddTemplate("otp", `<p>Your code is {{.Code}}</p>`))

	html, err := tm.Render("otp", TemplateData{"Code": "123456"})
	require.NoError(t, err)
	assert.Equal(t, "<p>Your code is 123456</p>", html)
}

func TestRenderEscapesHTML(t *testing.T) {
	tm := NewTemplateManager()
	require.NoError(t, tm.AddTemplate("greet", `<p>Hello {{.Name}}</p>`))

	html, err := tm.Render("greet", TemplateData{"Name": "<script>x</script>"})
	require.NoError(t, err)
	assert.NotContains(t, html, "<script>")
}

func TestRenderUnknownTemplate(t *testing.T) {
	tm := NewTemplateManager()

	_, err := tm.Render("missing", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "template not found")
}

func TestAddTemplateRejectsBadSyntax(t *testing.T) {
	tm := NewTemplateManager()
	assert.Error(t, tm.AddTemplate("broken", `{{.Unclosed`))
}

func TestAddTemplateOverridesByName(t *testing.T) {
	tm := NewTemplateManager()
	require.NoError(t, tm.AddTemplate("welcome", `built-in`))
	require.NoError(t, tm.AddTemplate("welcome", `custom`))

	html, err := tm.Render("welcome", nil)
	require.NoError(t, err)
	assert.Equal(t, "custom", html)
}

func TestLoadTemplatesFromDisk(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "otp.html"), []byte(`disk {{.Code}}`), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte(`ignored`), 0o644))

	tm := NewTemplateManager()
	require.NoError(t, tm.AddTemplate("otp", `built-in {{.Code}}`))
	require.NoError(t, tm.LoadTemplates(dir))

	// Disk templates win over the built-in of the same name.
	html, err := tm.Render("otp", TemplateData{"Code": "42"})
	require.NoError(t, err)
	assert.Equal(t, "disk 42", html)

	assert.ElementsMatch(t, []string{"otp"}, tm.TemplateNames())
}

func TestLoadTemplatesMissingDir(t *testing.T) {
	tm := NewTemplateManager()
	assert.Error(t, tm.LoadTemplates(filepath.Join(t.TempDir(), "nope")))
}

func TestSMTPConfigValidate(t *testing.T) {
	cfg := &SMTPConfig{Host: "smtp.example.com", Port: 587, FromEmail: "noreply@example.com"}
	require.NoError(t, cfg.Validate())

	assert.ErrorIs(t, (&SMTPConfig{Port: 587, FromEmail: "a@b.c"}).Validate(), errNoHost)
	assert.ErrorIs(t, (&SMTPConfig{Host: "h", Port: 0, FromEmail: "a@b.c"}).Validate(), errBadPort)
	assert.ErrorIs(t, (&SMTPConfig{Host: "h", Port: 70000, FromEmail: "a@b.c"}).Validate(), errBadPort)
	assert.ErrorIs(t, (&SMTPConfig{Host: "h", Port: 587}).Validate(), errNoFrom)
}

func TestNewSMTPProviderRejectsBadConfig(t *testing.T) {
	_, err := NewSMTPProvider(&SMTPConfig{}, NewTemplateManager())
	assert.Error(t, err)
}
