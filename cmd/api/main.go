package main

import (
	"fmt"
	"net/http"

	"github.com/tabelio/attendance-backend-go/internal/config"
	"github.com/tabelio/attendance-backend-go/internal/domain/analysis"
	"github.com/tabelio/attendance-backend-go/internal/fixtures"
	appHTTP "github.com/tabelio/attendance-backend-go/internal/handler/http"
	analysisService "github.com/tabelio/attendance-backend-go/internal/service/analysis"
	directoryService "github.com/tabelio/attendance-backend-go/internal/service/directory"
	"github.com/tabelio/attendance-backend-go/internal/service/snapshot"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	store := snapshot.New(
		analysis.Shift{Start: cfg.Shift.Start, End: cfg.Shift.End},
		fixtures.DefaultRoster(),
	)

	analysisSvc := analysisService.NewAnalysisService(store)
	directorySvc := directoryService.NewDirectoryService(store)

	analysisHandler := appHTTP.NewAnalysisHandler(analysisSvc, cfg.HTTP.UploadMaxBytes)
	directoryHandler := appHTTP.NewDirectoryHandler(directorySvc, cfg.HTTP.UploadMaxBytes)

	router := appHTTP.NewRouter(cfg, analysisHandler, directoryHandler)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
