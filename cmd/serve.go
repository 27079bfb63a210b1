package cmd

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"github.com/spf13/cobra"

	"github.com/Cierra-Runis/relocate/constants"
	"github.com/Cierra-Runis/relocate/file"
	"github.com/Cierra-Runis/relocate/logger"
	"github.com/Cierra-Runis/relocate/model"
	"github.com/Cierra-Runis/relocate/smf"
)

var (
	inspectionsMu sync.RWMutex
	inspections   = make(map[string]model.InspectionResponse)
)

func init() {
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the inspection api",
	Long:  `Serves the inspection api`,
	Run: func(cmd *cobra.Command, args []string) {
		serve()
	},
}

func writeError(w http.ResponseWriter, status int, detail string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(model.ErrorResponse{Error: detail})
}

// HandleCreateInspection decodes the posted midi bytes and stores an
// overview of the document under a fresh id.
func HandleCreateInspection(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, constants.MaxUploadBytes))
	if err != nil {
		writeError(w, http.StatusBadRequest, "could not read request body: "+err.Error())
		return
	}

	f, anomalies, err := smf.Decode(body)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	res := model.InspectionResponse{
		Id:       uuid.New().String(),
		Overview: file.CreateOverview(f, anomalies),
	}
	inspectionsMu.Lock()
	inspections[res.Id] = res
	inspectionsMu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(res)
}

// HandleGetInspection returns a previously stored overview.
func HandleGetInspection(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	inspectionsMu.RLock()
	res, ok := inspections[id]
	inspectionsMu.RUnlock()

	if !ok {
		writeError(w, http.StatusNotFound, "no inspection with id "+id)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(res)
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		logger.GetLogger().Info("handled request",
			"method", r.Method,
			"path", r.URL.Path,
			"duration", time.Since(start))
	})
}

// NewRouter wires up the inspection api.
func NewRouter() http.Handler {
	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/inspections", HandleCreateInspection).Methods("POST")
	router.HandleFunc("/inspections/{id}", HandleGetInspection).Methods("GET")
	router.Use(loggingMiddleware)
	return cors.Default().Handler(router)
}

func serve() {
	if err := logger.InitLogger("info"); err != nil {
		panic(err)
	}
	addr := constants.GetServeAddr()
	logger.GetLogger().Info("serving", "addr", addr)
	log.Fatal(http.ListenAndServe(addr, NewRouter()))
}
