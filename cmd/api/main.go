package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/joho/godotenv"

	"grievance-map-go/internal/aggregator"
	"grievance-map-go/internal/config"
	"grievance-map-go/internal/dataset"
	"grievance-map-go/internal/display"
	"grievance-map-go/internal/geo"
	"grievance-map-go/internal/logger"
	"grievance-map-go/internal/selection"
	"grievance-map-go/internal/severity"
	"grievance-map-go/internal/types"
)

// app owns the two mutable cells: the current statistics table (swapped
// wholesale on rebuild, never patched) and the selection controller.
// One mutex serializes all access so consumers only ever observe the
// previous or the next complete table.
type app struct {
	cfg config.Config

	mu          sync.Mutex
	stats       []*types.RegionStats
	index       map[string]*types.RegionStats
	recordCount int
	center      geo.Point
	sel         *selection.Controller
}

// regionView is one table row dressed for the rendering layer.
type regionView struct {
	Key      string                  `json:"key"`
	Label    string                  `json:"label"`
	Total    int                     `json:"total"`
	Severity severity.Severity       `json:"severity"`
	Tooltip  string                  `json:"tooltip"`
	Style    display.Style           `json:"style"`
	Records  []types.GrievanceRecord `json:"records,omitempty"`
}

func (a *app) view(s *types.RegionStats, withRecords bool) regionView {
	sev := severity.Classify(s.Total, a.cfg.Severity)
	v := regionView{
		Key:      s.Key,
		Label:    s.Label,
		Total:    s.Total,
		Severity: sev,
		Tooltip:  display.Tooltip(s.Label, s.Total),
		Style:    display.StyleFor(sev),
	}
	if withRecords {
		v.Records = s.Records
	}
	return v
}

func (a *app) rebuild(records []types.GrievanceRecord, features []types.BoundaryFeature) {
	stats := aggregator.Aggregate(records, features, a.cfg.BoundaryNameKey)
	a.mu.Lock()
	defer a.mu.Unlock()
	a.stats = stats
	a.index = aggregator.Index(stats)
	a.recordCount = len(records)
	a.center = geo.Centroid(records, a.cfg.FallbackCenter)
}

// selectionView reports the controller state plus the resolved detail.
// A selected key missing from the current table (stale after a reload)
// yields detail null, never an error.
type selectionView struct {
	Selected bool        `json:"selected"`
	Key      string      `json:"key,omitempty"`
	Detail   *regionView `json:"detail"`
}

func (a *app) selectionLocked() selectionView {
	key, ok := a.sel.Current()
	if !ok {
		return selectionView{}
	}
	out := selectionView{Selected: true, Key: key}
	if s, found := a.index[key]; found {
		v := a.view(s, true)
		out.Detail = &v
	}
	return out
}

func main() {
	_ = godotenv.Load() // loads .env

	log := logger.New()
	log.WithField("service", "grievance-map-go").Info("starting service")

	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Fatal("invalid configuration")
	}

	records, features, err := loadDatasets(cfg, log)
	if err != nil {
		log.WithError(err).Fatal("failed to load datasets")
	}

	a := &app{cfg: cfg, sel: selection.New()}
	a.rebuild(records, features)
	log.WithField("total_records", len(records)).
		WithField("total_regions", len(a.stats)).Info("statistics table built")

	mux := http.NewServeMux()

	// health
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		logger.New().WithRequest(r).Info("health check")
		fmt.Fprint(w, "ok")
	})

	// ranked table + counters + centroid
	mux.HandleFunc("GET /regions", func(w http.ResponseWriter, r *http.Request) {
		reqLog := logger.New().WithRequest(r).WithField("handler", "regions")
		reqLog.Info("regions request received")

		a.mu.Lock()
		views := make([]regionView, 0, len(a.stats))
		for _, s := range a.stats {
			views = append(views, a.view(s, false))
		}
		resp := map[string]interface{}{
			"regions":       views,
			"total_records": a.recordCount,
			"total_regions": len(a.stats),
			"center":        a.center,
		}
		a.mu.Unlock()

		writeJSON(w, http.StatusOK, resp)
	})

	// single region by key
	mux.HandleFunc("GET /regions/{key}", func(w http.ResponseWriter, r *http.Request) {
		reqLog := logger.New().WithRequest(r).WithField("handler", "region")
		key := aggregator.NormalizeKey(r.PathValue("key"))

		a.mu.Lock()
		s, found := a.index[key]
		var v regionView
		if found {
			v = a.view(s, true)
		}
		a.mu.Unlock()

		if !found {
			reqLog.WithField("key", key).Warn("unknown region key")
			http.Error(w, "unknown region", http.StatusNotFound)
			return
		}
		writeJSON(w, http.StatusOK, v)
	})

	// selection state machine
	mux.HandleFunc("POST /selection/select", func(w http.ResponseWriter, r *http.Request) {
		reqLog := logger.New().WithRequest(r).WithField("handler", "select")
		key := aggregator.NormalizeKey(r.URL.Query().Get("key"))
		if key == "" {
			reqLog.Warn("missing key")
			http.Error(w, "missing key", http.StatusBadRequest)
			return
		}
		a.mu.Lock()
		a.sel.Select(key)
		resp := a.selectionLocked()
		a.mu.Unlock()
		reqLog.WithField("key", key).Info("region selected")
		writeJSON(w, http.StatusOK, resp)
	})

	mux.HandleFunc("POST /selection/dismiss", func(w http.ResponseWriter, r *http.Request) {
		logger.New().WithRequest(r).Info("selection dismissed")
		a.mu.Lock()
		a.sel.Dismiss()
		resp := a.selectionLocked()
		a.mu.Unlock()
		writeJSON(w, http.StatusOK, resp)
	})

	mux.HandleFunc("GET /selection", func(w http.ResponseWriter, r *http.Request) {
		a.mu.Lock()
		resp := a.selectionLocked()
		a.mu.Unlock()
		writeJSON(w, http.StatusOK, resp)
	})

	// full rebuild from the current dataset files
	mux.HandleFunc("POST /reload", func(w http.ResponseWriter, r *http.Request) {
		reqLog := logger.New().WithRequest(r).WithField("handler", "reload")
		reqLog.Info("reload requested")

		recs, err := dataset.Load(cfg.GrievancePath)
		if err != nil {
			reqLog.WithError(err).Error("grievance reload failed")
			http.Error(w, "grievance reload failed", http.StatusInternalServerError)
			return
		}
		feats, err := dataset.LoadBoundaries(cfg.BoundaryPath)
		if err != nil {
			reqLog.WithError(err).Error("boundary reload failed")
			http.Error(w, "boundary reload failed", http.StatusInternalServerError)
			return
		}
		a.rebuild(recs, feats)

		a.mu.Lock()
		resp := map[string]interface{}{
			"total_records": a.recordCount,
			"total_regions": len(a.stats),
		}
		a.mu.Unlock()
		reqLog.WithField("total_records", len(recs)).Info("statistics table rebuilt")
		writeJSON(w, http.StatusOK, resp)
	})

	addr := fmt.Sprintf(":%s", cfg.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}
	log.WithField("addr", addr).Info("listening")
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.WithError(err).Fatal("server terminated")
	}
}

// loadDatasets retries while the dataset files are still being
// provisioned; anything other than a missing file is permanent.
func loadDatasets(cfg config.Config, log *logger.Logger) ([]types.GrievanceRecord, []types.BoundaryFeature, error) {
	var records []types.GrievanceRecord
	var features []types.BoundaryFeature

	op := func() error {
		recs, err := dataset.Load(cfg.GrievancePath)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				log.WithError(err).Warn("grievance dataset not ready, retrying")
				return err
			}
			return backoff.Permanent(err)
		}
		feats, err := dataset.LoadBoundaries(cfg.BoundaryPath)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				log.WithError(err).Warn("boundary dataset not ready, retrying")
				return err
			}
			return backoff.Permanent(err)
		}
		records, features = recs, feats
		return nil
	}

	bo := backoff.NewExponentialBackOff()
	bo.MaxElapsedTime = cfg.RetryMaxElapsed
	if err := backoff.Retry(op, bo); err != nil {
		return nil, nil, err
	}
	return records, features, nil
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		logger.New().WithError(err).Error("failed to write response")
	}
}
