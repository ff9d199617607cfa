package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/arolek/stepfuse/internal/merge"
	"github.com/arolek/stepfuse/internal/metrics"
)

// runSummary records the most recent compose invocation's outcome for
// the debug server's /last-run endpoint. A nil lastRun means no
// compose has run yet in this process.
type runSummary struct {
	AssemblyPath string          `json:"assembly_path"`
	OutputPath   string          `json:"output_path"`
	Warnings     []merge.Warning `json:"warnings"`
	ComposedAt   time.Time       `json:"composed_at"`
}

var lastRun *runSummary

func newServeCmd(log *logrus.Logger) *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve /metrics and /last-run for debugging compose runs",
		RunE: func(cmd *cobra.Command, args []string) error {
			r := mux.NewRouter()
			r.Handle("/metrics", promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{}))
			r.HandleFunc("/last-run", lastRunHandler).Methods(http.MethodGet)

			addr := fmt.Sprintf(":%d", port)
			log.WithField("addr", addr).Info("debug server listening")
			return http.ListenAndServe(addr, r)
		},
	}

	cmd.Flags().IntVar(&port, "port", 8080, "port to listen on")
	return cmd
}

func lastRunHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if lastRun == nil {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"error": "no compose run yet"})
		return
	}
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(lastRun)
}
