// Command smoke runs the whole CV pipeline against a mock content API and a
// real headless Chrome, then writes the published PDF to cv_smoke.pdf.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"time"

	"github.com/iggarsaudev/career-hub/internal/adapter/storage"
	"github.com/iggarsaudev/career-hub/internal/locale"
	"github.com/iggarsaudev/career-hub/internal/logging"
	"github.com/iggarsaudev/career-hub/internal/qr"
	"github.com/iggarsaudev/career-hub/internal/usecase"
	"github.com/iggarsaudev/career-hub/pkg/contentapi"
	"github.com/iggarsaudev/career-hub/pkg/infrastructure"
)

var collections = map[string]string{
	"profile": `{
		"name": "Ana Ruiz", "email": "ana@example.com", "phone": "+34 600 000 000",
		"city": "Sevilla", "country": "España", "drivingLicense": "B",
		"title": "Desarrolladora Backend", "title_en": "Backend Developer",
		"summary": "Construyo APIs fiables.", "summary_en": "I build reliable APIs.",
		"linkedin": "https://www.linkedin.com/in/ana", "github": "https://github.com/ana",
		"portfolioUrl": "https://ana.dev"
	}`,
	"projects": `[{"id": 1, "title": "Tienda", "title_en": "Shop", "techStack": ["Go"], "isVisible": true}]`,
	"experience": `[
		{"id": 1, "position": "Becaria", "position_en": "Intern", "company": "Old Co", "startDate": "2019-02-01", "endDate": "2020-06-30",
		 "description": "Mantenimiento.", "isVisible": true, "isVisibleInPdf": true, "showDescriptionInPdf": false},
		{"id": 2, "position": "Backend Dev", "company": "Acme", "location": "Remoto", "startDate": "2022-01-01",
		 "description": "Construí APIs.", "description_en": "Built APIs.", "isVisible": true, "isVisibleInPdf": true, "showDescriptionInPdf": true}
	]`,
	"education": `[{"id": 1, "degree": "Grado en Informática", "degree_en": "BSc Computer Science", "school": "Universidad de Sevilla",
		"startDate": "2014-09-01", "endDate": "2018-06-30", "isVisibleInPdf": true}]`,
	"skills": `[{"id": 1, "name": "Go", "category": "Lenguajes"}, {"id": 2, "name": "PostgreSQL", "category": "Bases de datos"}]`,
	"languages": `[{"id": 1, "name": "Inglés", "name_en": "English", "level": "C1"}]`,
}

func startMockContentAPI() (*http.Server, string, error) {
	mux := http.NewServeMux()
	for name, body := range collections {
		body := body
		mux.HandleFunc("/api/"+name, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(body))
		})
	}
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		return nil, "", err
	}
	srv := &http.Server{Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("mock content api failed", "error", err)
		}
	}()
	return srv, "http://" + ln.Addr().String() + "/api", nil
}

func main() {
	log := logging.NewJSON(os.Stdout, slog.LevelInfo)
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	srv, baseURL, err := startMockContentAPI()
	if err != nil {
		log.Error(ctx, "start mock content api", "error", err)
		os.Exit(1)
	}
	defer srv.Shutdown(context.Background())

	renderer := infrastructure.NewChromedpRenderer(infrastructure.MustHTMLRenderer(), os.Getenv("CHROME_PATH"), 45*time.Second)
	store := storage.NewMemoryStore()
	gen := usecase.NewGenerator(
		contentapi.NewClient(baseURL, 10*time.Second),
		qr.NewGenerator(""),
		renderer,
		store,
		log,
		usecase.GeneratorOptions{RenderAttempts: 2, RenderBackoff: time.Second, AvatarFallback: true},
	)

	lang := locale.ParseLang(os.Getenv("SMOKE_LANG"))
	ack, err := gen.GenerateAndPublish(ctx, lang)
	if err != nil {
		log.Error(ctx, "generate and publish failed", "error", err)
		os.Exit(1)
	}
	pub, err := gen.Retrieve(ctx)
	if err != nil {
		log.Error(ctx, "retrieve failed", "error", err)
		os.Exit(1)
	}
	if err := os.WriteFile("cv_smoke.pdf", pub.Data, 0o644); err != nil {
		log.Error(ctx, "write pdf", "error", err)
		os.Exit(1)
	}
	log.Info(ctx, "smoke run completed", "lang", lang, "size", ack.Size, "download_name", pub.FileName, "out", "cv_smoke.pdf")
}
