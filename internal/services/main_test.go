package services

import (
	"fmt"
	"os"
	"sync"
	"testing"

	"nexivo_backend/internal/config"
	"nexivo_backend/internal/email"
	"nexivo_backend/internal/models"
	"nexivo_backend/internal/storage"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func TestMain(m *testing.M) {
	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.TTLHours = 1
	config.AppConfig = cfg

	os.Exit(m.Run())
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.Service{},
		&models.Enrollment{},
		&models.Blog{},
		&models.Vacancy{},
		&models.VacancyApplication{},
		&models.JoinRequest{},
		&models.Subscriber{},
	)
	if err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

// sentMail is one delivery recorded by fakeEmailProvider.
type sentMail struct {
	To       string
	Subject  string
	Template string
	Data     email.TemplateData
}

// fakeEmailProvider records sends and can fail selected recipients.
type fakeEmailProvider struct {
	mu      sync.Mutex
	sent    []sentMail
	failTo  map[string]bool
	failAll bool
}

func newFakeEmailProvider() *fakeEmailProvider {
	return &fakeEmailProvider{failTo: map[string]bool{}}
}

func (f *fakeEmailProvider) Send(to, subject, htmlBody string) error {
	return f.record(to, subject, "", nil)
}

func (f *fakeEmailProvider) SendTemplate(to, subject, templateName string, data email.TemplateData) error {
	return f.record(to, subject, templateName, data)
}

func (f *fakeEmailProvider) record(to, subject, templateName string, data email.TemplateData) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failAll || f.failTo[to] {
		return fmt.Errorf("smtp refused %s", to)
	}
	f.sent = append(f.sent, sentMail{To: to, Subject: subject, Template: templateName, Data: data})
	return nil
}

func (f *fakeEmailProvider) sentTo(to string) []sentMail {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []sentMail
	for _, m := range f.sent {
		if m.To == to {
			out = append(out, m)
		}
	}
	return out
}

func (f *fakeEmailProvider) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.sent)
}

func (f *fakeEmailProvider) last() *sentMail {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.sent) == 0 {
		return nil
	}
	m := f.sent[len(f.sent)-1]
	return &m
}

func newTestGateway(t *testing.T) *storage.Gateway {
	t.Helper()
	local, err := storage.NewLocalProvider(t.TempDir())
	if err != nil {
		t.Fatalf("failed to create local storage: %v", err)
	}
	return storage.NewGateway(local)
}

func newTestContainer(t *testing.T, provider email.Provider) *ServiceContainer {
	t.Helper()
	return NewServiceContainer(provider, newTestGateway(t), ContainerConfig{
		AdminEmail: "admin@example.com",
		SiteURL:    "https://example.com",
	})
}
