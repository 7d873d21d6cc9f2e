package main

import (
	"log"

	_ "github.com/flowmeta/eventlog-service/docs" // Import generated docs
	"github.com/flowmeta/eventlog-service/internal/api"
)

// @title Workflow Event Log API
// @version 1.0
// @description Read-only query API over the audit log of a workflow-orchestration metadata store.
// @description
// @description ## Endpoints
// @description - **Single fetch**: resolve one event log identifier to its stored record
// @description - **Filtered listing**: filter by workflow, task, run, owner, event names, and time range, with sorting and offset pagination; total_entries always counts all matches before pagination
// @description
// @description All records are written by the orchestrator itself; this service never mutates them.

// @contact.name API Support
// @contact.url https://github.com/flowmeta/eventlog-service

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1
// @schemes http https

// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
// @description API key holding read access to the audit log

func main() {
	srv := api.NewServer()
	if err := srv.Serve(); err != nil {
		log.Fatalf("api server stopped: %v", err)
	}
}
