// Package transport serves the read-only HTTP API over the collected stats.
package transport

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"slices"
	"strconv"
	"time"

	"github.com/goodnatureofminers/spectre-netstats/internal/clock"
	"github.com/goodnatureofminers/spectre-netstats/internal/netstats/reward"
	gwruntime "github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	"github.com/rs/cors"
	"go.uber.org/zap"
)

const (
	defaultHistoryLimit = 100
	maxHistoryLimit     = 1000
)

var errNoHistory = errors.New("history is disabled")

type route struct {
	name    string
	pattern string
	handle  func(w http.ResponseWriter, r *http.Request, params map[string]string) int
}

// StatsHandler answers queries about the nodes it was built with.
type StatsHandler struct {
	sources  map[string]SnapshotSource
	nodes    []string
	schedule RewardLookup
	history  SnapshotHistory
	metrics  Metrics
	clock    clock.Clock
	logger   *zap.Logger
}

// NewStatsHandler builds a StatsHandler. history may be nil, in which case the history
// route answers 501.
func NewStatsHandler(
	sources []SnapshotSource,
	schedule RewardLookup,
	history SnapshotHistory,
	metrics Metrics,
	logger *zap.Logger,
) (*StatsHandler, error) {
	if len(sources) == 0 {
		return nil, errors.New("at least one snapshot source is required")
	}
	if schedule == nil {
		return nil, errors.New("reward schedule is required")
	}
	if metrics == nil {
		return nil, errors.New("api metrics is required")
	}
	if logger == nil {
		return nil, errors.New("logger is required")
	}

	h := &StatsHandler{
		sources:  make(map[string]SnapshotSource, len(sources)),
		schedule: schedule,
		history:  history,
		metrics:  metrics,
		clock:    clock.Real,
		logger:   logger,
	}
	for _, src := range sources {
		node := src.Node()
		if _, dup := h.sources[node]; dup {
			return nil, fmt.Errorf("duplicate node %q", node)
		}
		h.sources[node] = src
		h.nodes = append(h.nodes, node)
	}
	slices.Sort(h.nodes)
	return h, nil
}

func (h *StatsHandler) routes() []route {
	return []route{
		{name: "health", pattern: "/v1/health", handle: h.health},
		{name: "nodes", pattern: "/v1/nodes", handle: h.listNodes},
		{name: "node_stats", pattern: "/v1/nodes/{node}/stats", handle: h.nodeStats},
		{name: "node_history", pattern: "/v1/nodes/{node}/history", handle: h.nodeHistory},
		{name: "reward", pattern: "/v1/reward", handle: h.reward},
		{name: "reward_estimate", pattern: "/v1/reward/estimate", handle: h.estimate},
	}
}

// Register adds every route to mux.
func (h *StatsHandler) Register(mux *gwruntime.ServeMux) error {
	for _, rt := range h.routes() {
		err := mux.HandlePath(http.MethodGet, rt.pattern, func(w http.ResponseWriter, r *http.Request, params map[string]string) {
			started := time.Now()
			code := rt.handle(w, r, params)
			h.metrics.ObserveRequest(rt.name, code, started)
		})
		if err != nil {
			return fmt.Errorf("register %s: %w", rt.pattern, err)
		}
	}
	return nil
}

// Handler returns the API on its own gateway mux with permissive CORS.
func (h *StatsHandler) Handler() (http.Handler, error) {
	mux := gwruntime.NewServeMux()
	if err := h.Register(mux); err != nil {
		return nil, err
	}
	return cors.Default().Handler(mux), nil
}

func (h *StatsHandler) health(w http.ResponseWriter, _ *http.Request, _ map[string]string) int {
	return h.write(w, http.StatusOK, healthResponse{Status: "ok"})
}

func (h *StatsHandler) listNodes(w http.ResponseWriter, _ *http.Request, _ map[string]string) int {
	resp := nodesResponse{Nodes: make([]nodeSummary, 0, len(h.nodes))}
	for _, node := range h.nodes {
		snap := h.sources[node].Snapshot()
		summary := nodeSummary{Node: node, UpdatedAt: snap.UpdatedAt, Progress: snap.Progress}
		if snap.Network != nil {
			summary.Network = snap.Network.NetworkName
		}
		resp.Nodes = append(resp.Nodes, summary)
	}
	return h.write(w, http.StatusOK, resp)
}

func (h *StatsHandler) nodeStats(w http.ResponseWriter, _ *http.Request, params map[string]string) int {
	src, ok := h.sources[params["node"]]
	if !ok {
		return h.fail(w, http.StatusNotFound, fmt.Errorf("unknown node %q", params["node"]))
	}
	return h.write(w, http.StatusOK, src.Snapshot().Document())
}

func (h *StatsHandler) nodeHistory(w http.ResponseWriter, r *http.Request, params map[string]string) int {
	node := params["node"]
	if _, ok := h.sources[node]; !ok {
		return h.fail(w, http.StatusNotFound, fmt.Errorf("unknown node %q", node))
	}
	if h.history == nil {
		return h.fail(w, http.StatusNotImplemented, errNoHistory)
	}

	limit := uint32(defaultHistoryLimit)
	if raw := r.URL.Query().Get("limit"); raw != "" {
		v, err := strconv.ParseUint(raw, 10, 32)
		if err != nil || v == 0 || v > maxHistoryLimit {
			return h.fail(w, http.StatusBadRequest, fmt.Errorf("limit must be between 1 and %d", maxHistoryLimit))
		}
		limit = uint32(v)
	}

	rows, err := h.history.RecentSnapshots(r.Context(), node, limit)
	if err != nil {
		h.logger.Error("load snapshot history", zap.String("node", node), zap.Error(err))
		return h.fail(w, http.StatusInternalServerError, errors.New("history unavailable"))
	}
	return h.write(w, http.StatusOK, newHistoryResponse(node, rows))
}

// reward takes the progress value from ?progress= or, when absent, from ?node='s snapshot.
func (h *StatsHandler) reward(w http.ResponseWriter, r *http.Request, _ map[string]string) int {
	progress, status, err := h.progress(r)
	if err != nil {
		return h.fail(w, status, err)
	}
	return h.write(w, http.StatusOK, newRewardResponse(h.schedule.Lookup(progress), h.clock.Now()))
}

// estimate projects earnings for ?hashrate= (H/s) against the network hashrate reported
// by ?node=, with one block reward minted per second.
func (h *StatsHandler) estimate(w http.ResponseWriter, r *http.Request, _ map[string]string) int {
	query := r.URL.Query()
	hashrate, err := strconv.ParseFloat(query.Get("hashrate"), 64)
	if err != nil || hashrate <= 0 {
		return h.fail(w, http.StatusBadRequest, errors.New("hashrate must be a positive number"))
	}

	node := query.Get("node")
	if node == "" && len(h.nodes) == 1 {
		node = h.nodes[0]
	}
	src, ok := h.sources[node]
	if !ok {
		return h.fail(w, http.StatusNotFound, fmt.Errorf("unknown node %q", node))
	}
	snap := src.Snapshot()
	if snap.Network == nil {
		return h.fail(w, http.StatusServiceUnavailable, errors.New("network hashrate is not known yet"))
	}

	info := h.schedule.Lookup(snap.Progress)
	network := snap.Network.EstimatedHashrate()
	earnings, err := reward.Estimate(info.CurrentReward, hashrate, network)
	if err != nil {
		return h.fail(w, http.StatusServiceUnavailable, err)
	}
	return h.write(w, http.StatusOK, newEstimateResponse(node, hashrate, network, info.CurrentReward, earnings))
}

func (h *StatsHandler) progress(r *http.Request) (uint64, int, error) {
	query := r.URL.Query()
	if raw := query.Get("progress"); raw != "" {
		v, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return 0, http.StatusBadRequest, fmt.Errorf("invalid progress %q", raw)
		}
		return v, http.StatusOK, nil
	}

	node := query.Get("node")
	if node == "" {
		return 0, http.StatusBadRequest, errors.New("progress or node is required")
	}
	src, ok := h.sources[node]
	if !ok {
		return 0, http.StatusNotFound, fmt.Errorf("unknown node %q", node)
	}
	return src.Snapshot().Progress, http.StatusOK, nil
}

func (h *StatsHandler) fail(w http.ResponseWriter, code int, err error) int {
	return h.write(w, code, errorResponse{Error: err.Error()})
}

func (h *StatsHandler) write(w http.ResponseWriter, code int, body any) int {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.logger.Debug("write response", zap.Error(err))
	}
	return code
}
