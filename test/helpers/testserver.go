package helpers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"lawfirm_backend/database"
	"lawfirm_backend/internal/app"
	"lawfirm_backend/internal/config"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// TestServer - HTTP-сервер поверх изолированной in-memory базы.
// Каждый тест поднимает свой экземпляр, состояние не пересекается.
type TestServer struct {
	Server *httptest.Server
	DB     *gorm.DB
}

// Глобальный конфиг пишется один раз: его читают токены и лимиты
// загрузки, значения во всех тестах одинаковые.
var configOnce sync.Once

// NewTestServer поднимает сервер с полным стеком приложения
func NewTestServer(t *testing.T) *TestServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	// Конфигурация собирается руками, без файлов и окружения
	cfg := &config.Config{}
	cfg.Server.Env = "test"
	cfg.JWT.Secret = "integration-test-secret"
	cfg.JWT.TTL = 5
	cfg.Storage.BasePath = t.TempDir()
	cfg.Storage.BaseURL = "/api/v1/files"
	cfg.Upload.MaxSize = 10 * 1024 * 1024
	cfg.Upload.AllowedTypes = []string{"application/pdf", "image/jpeg", "image/png"}
	cfg.CORS.AllowedOrigins = []string{"http://localhost:5173"}
	configOnce.Do(func() {
		config.AppConfig = cfg
	})

	dsn := fmt.Sprintf("file:it_%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("Не удалось открыть тестовую БД: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		t.Fatalf("Не удалось выполнить миграции тестовой БД: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("Не удалось получить *sql.DB из GORM: %v", err)
	}

	router := app.SetupRouter(cfg, db, sqlDB)
	server := httptest.NewServer(router)

	t.Cleanup(func() {
		server.Close()
		_ = sqlDB.Close()
	})

	return &TestServer{Server: server, DB: db}
}

// SendRequest отправляет JSON-запрос, опционально с Bearer-токеном
func (ts *TestServer) SendRequest(t *testing.T, method, path, token string, body interface{}) (*http.Response, string) {
	t.Helper()

	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("Ошибка кодирования JSON для запроса: %v", err)
		}
		reqBody = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequest(method, ts.Server.URL+path, reqBody)
	if err != nil {
		t.Fatalf("Ошибка создания HTTP-запроса: %v", err)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := ts.Server.Client().Do(req)
	if err != nil {
		t.Fatalf("Ошибка отправки HTTP-запроса: %v", err)
	}
	defer res.Body.Close()

	resBody, err := io.ReadAll(res.Body)
	if err != nil {
		t.Fatalf("Ошибка чтения тела ответа: %v", err)
	}

	return res, string(resBody)
}

// SendMultipart отправляет multipart/form-data с одним файлом
func (ts *TestServer) SendMultipart(t *testing.T, path, token string, fields map[string]string, fileField, fileName, contentType string, fileContent []byte) (*http.Response, string) {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	for key, value := range fields {
		if err := writer.WriteField(key, value); err != nil {
			t.Fatalf("Ошибка записи поля формы %s: %v", key, err)
		}
	}

	// Заголовок части выставляется вручную ради Content-Type файла
	partHeader := make(map[string][]string)
	partHeader["Content-Disposition"] = []string{
		fmt.Sprintf(`form-data; name="%s"; filename="%s"`, fileField, fileName),
	}
	partHeader["Content-Type"] = []string{contentType}
	part, err := writer.CreatePart(partHeader)
	if err != nil {
		t.Fatalf("Ошибка создания части формы: %v", err)
	}
	if _, err := part.Write(fileContent); err != nil {
		t.Fatalf("Ошибка записи файла в форму: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("Ошибка закрытия multipart-формы: %v", err)
	}

	req, err := http.NewRequest(http.MethodPost, ts.Server.URL+path, &buf)
	if err != nil {
		t.Fatalf("Ошибка создания HTTP-запроса: %v", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	res, err := ts.Server.Client().Do(req)
	if err != nil {
		t.Fatalf("Ошибка отправки HTTP-запроса: %v", err)
	}
	defer res.Body.Close()

	resBody, err := io.ReadAll(res.Body)
	if err != nil {
		t.Fatalf("Ошибка чтения тела ответа: %v", err)
	}

	return res, string(resBody)
}
