package main

import (
	"log/slog"
	"net/http"
	"os"
	"path/filepath"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"

	"rgis-prio/http-server/auth/login"
	generate_csv "rgis-prio/http-server/generate-report/generate-csv"
	generate_excel "rgis-prio/http-server/generate-report/generate-excel"
	gethsource "rgis-prio/http-server/heat-source/get"
	savehsource "rgis-prio/http-server/heat-source/save"
	uphsource "rgis-prio/http-server/heat-source/update"
	getperiod "rgis-prio/http-server/heating-period/get"
	getincident "rgis-prio/http-server/incident/get"
	getmkd "rgis-prio/http-server/mkd/get"
	getorg "rgis-prio/http-server/org/get"
	getsettings "rgis-prio/http-server/settings/get"
	savesettings "rgis-prio/http-server/settings/save"
	"rgis-prio/internal/config"
	"rgis-prio/internal/middleware/auth"
	"rgis-prio/internal/permissions"
	"rgis-prio/internal/rgis"
	export_excel "rgis-prio/internal/service/export-excel"
	"rgis-prio/internal/session"
)

func routes(
	cfg config.Config,
	log *slog.Logger,
	store *session.Store,
	client *rgis.Client,
	perms *permissions.Cache,
	excelService *export_excel.Service,
) *chi.Mux {
	router := chi.NewRouter()

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{"http://localhost:8081", "http://localhost:5173"}, // Разрешаем запросы с фронтенда
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	router.Use(corsHandler.Handler)

	router.Use(middleware.RequestID)
	//ip пользователя
	router.Use(middleware.RealIP)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)

	// Гонка быстрых кликов по пагинации реестра
	hsSequencer := rgis.NewSequencer()

	// Вход — единственный маршрут без сессии
	router.Post("/api/login", login.LoginOperator(log, client))

	router.Group(func(r chi.Router) {
		r.Use(auth.RequireSession(store))

		r.Post("/api/logout", login.LogoutOperator(log, client, perms))

		// Теплоисточники
		r.Get("/api/hs", gethsource.GetHeatSources(log, client, hsSequencer))
		r.Get("/api/hs/{id}", gethsource.GetHeatSource(log, client))
		r.Post("/api/hs", savehsource.SaveHeatSource(log, client))
		r.Put("/api/hs/{id}", uphsource.UpdateHeatSource(log, client))
		r.Delete("/api/hs/{id}", uphsource.DeleteHeatSource(log, client))
		r.Get("/api/hs-types", gethsource.GetHeatSourceTypes(log, client))

		// Отопительные периоды и график включения
		r.Get("/api/hs-periods", getperiod.GetHeatingPeriods(log, client))
		r.Get("/api/hs-periods/{id}", getperiod.GetHeatingPeriod(log, client))
		r.Get("/api/heating-schedule", getperiod.GetHeatingSchedule(log, client))

		// МКД и ОКС
		r.Get("/api/mkd", getmkd.GetMKDBuildings(log, client))
		r.Get("/api/oks", getmkd.GetOKSList(log, client))

		// Инциденты
		r.Get("/api/incidents", getincident.GetIncidents(log, client))
		r.Get("/api/edds/incidents", getincident.GetEDDSIncidents(log, client))

		// Настройки дашборда
		r.Get("/api/settings", getsettings.GetSettings(log, client))

		// Организации и свободные мощности
		r.Get("/api/orgs", getorg.GetOrganizations(log, client))
		r.Get("/api/free-capacity", getorg.GetFreeCapacities(log, client))

		// Выгрузки
		r.Get("/api/report/csv/hs", generate_csv.ExportHeatSourcesCSV(log, client))
		r.Get("/api/report/csv/hs-periods", generate_csv.ExportHeatingPeriodsCSV(log, client))
		r.Get("/api/report/csv/mkd", generate_csv.ExportMKDBuildingsCSV(log, client))
		r.Get("/api/report/csv/incidents", generate_csv.ExportIncidentsCSV(log, client))
		r.Get("/api/report/excel", generate_excel.GenerateReportExcel(log, excelService))
	})

	// Админские маршруты: живая сессия + административное право
	adminRouter := chi.NewRouter()
	adminRouter.Use(auth.RequireSession(store))
	adminRouter.Use(auth.RequireAdmin(perms))

	adminRouter.Post("/settings/background", savesettings.UploadBackground(log, client))
	adminRouter.Post("/hs/import", savesettings.ImportHeatSources(log, client))

	router.Mount("/api/admin", adminRouter)

	// Статика, vue
	frontendDir := cfg.FrontendDir
	if _, err := os.Stat(frontendDir); os.IsNotExist(err) {
		log.Error("Папка фронтенда не найдена", "path", frontendDir)
		os.Exit(1) // лучше упасть при старте
	}

	//Отдаём статические файлы: assets/, js/, css/, img/ и т.д.
	fileServer := http.StripPrefix("/", http.FileServer(http.Dir(frontendDir)))

	router.Handle("/assets/*", fileServer)
	router.Handle("/js/*", fileServer)
	router.Handle("/css/*", fileServer)
	router.Handle("/img/*", fileServer)

	//SPA fallback: любой другой путь → index.html
	router.HandleFunc("/*", func(w http.ResponseWriter, r *http.Request) {
		// Если файл существует — отдаем его
		path := filepath.Join(frontendDir, r.URL.Path)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			http.ServeFile(w, r, path)
			return
		}
		// Иначе — SPA
		http.ServeFile(w, r, filepath.Join(frontendDir, "index.html"))
	})

	return router
}
