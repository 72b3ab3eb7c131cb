package admin

import (
	"fmt"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/disk"
	"github.com/shirou/gopsutil/v4/host"
	"github.com/shirou/gopsutil/v4/mem"

	"herbwise/internal/database"
	"herbwise/internal/imagegen"
	"herbwise/internal/remedy"
	"herbwise/internal/utility"
)

var (
	db           database.Service
	catalog      *remedy.Store
	orchestrator *imagegen.Orchestrator
	StartTime    = time.Now()

	// batchRunning guards against overlapping catalog batches. The
	// batch is long and paced, so a second trigger gets a 409 instead
	// of a queue.
	batchRunning atomic.Bool
)

func InitAdminPackage(svc database.Service, store *remedy.Store, orch *imagegen.Orchestrator) {
	db = svc
	catalog = store
	orchestrator = orch
	log.Info().Msg("Admin package initialized.")
}

// BatchProgressUpdate is pushed to connected dashboard clients while a
// catalog image batch runs.
type BatchProgressUpdate struct {
	Type    string `json:"type"`
	Current int    `json:"current"`
	Total   int    `json:"total"`
	Remedy  string `json:"remedy"`
}

type BatchSummary struct {
	Success  bool                 `json:"success"`
	Total    int                  `json:"total"`
	Complete int                  `json:"complete"`
	Failed   int                  `json:"failed"`
	Results  []imagegen.ItemOutcome `json:"results"`
}

// GenerateCatalogImagesHandler regenerates images for every remedy in
// the catalog, one at a time. Progress is streamed to dashboard
// websocket clients; the HTTP response carries the final tally.
func GenerateCatalogImagesHandler(c echo.Context) error {
	if !batchRunning.CompareAndSwap(false, true) {
		return c.JSON(http.StatusConflict, map[string]string{"error": "A batch is already running"})
	}
	defer batchRunning.Store(false)

	ctx := c.Request().Context()

	remedies, err := catalog.List(ctx)
	if err != nil {
		log.Error().Err(err).Msg("Failed to load catalog for batch generation")
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to load remedy catalog"})
	}
	if len(remedies) == 0 {
		return c.JSON(http.StatusOK, BatchSummary{Success: true, Results: []imagegen.ItemOutcome{}})
	}

	items := make([]imagegen.BatchItem, 0, len(remedies))
	for _, r := range remedies {
		items = append(items, imagegen.BatchItem{ID: r.ID, Descriptor: r.Descriptor()})
	}

	log.Info().Int("count", len(items)).Msg("Starting catalog image batch")

	outcomes := orchestrator.GenerateAll(ctx, items, func(current, total int, name string) {
		log.Info().Msgf("Generating image %d/%d: %s", current, total, name)
		utility.BroadcastJSON(BatchProgressUpdate{
			Type:    "BATCH_PROGRESS",
			Current: current,
			Total:   total,
			Remedy:  name,
		})
	})

	summary := BatchSummary{Success: true, Total: len(outcomes), Results: outcomes}
	for _, o := range outcomes {
		if o.Success {
			summary.Complete++
		} else {
			summary.Failed++
		}
	}

	utility.BroadcastJSON(map[string]any{
		"type":     "BATCH_COMPLETE",
		"total":    summary.Total,
		"complete": summary.Complete,
		"failed":   summary.Failed,
	})

	log.Info().
		Int("complete", summary.Complete).
		Int("failed", summary.Failed).
		Msg("Catalog image batch finished")

	return c.JSON(http.StatusOK, summary)
}

// AdminWebSocketHandler maintains the persistent dashboard connection.
func AdminWebSocketHandler(c echo.Context) error {
	ws, err := utility.Upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return err
	}
	defer ws.Close()

	clientID := uuid.NewString()
	utility.RegisterClient(clientID, ws)
	defer utility.UnregisterClient(clientID)

	// We don't expect messages from the dashboard, but we need to
	// read to keep the socket open and notice the close frame.
	for {
		if _, _, err := ws.ReadMessage(); err != nil {
			break
		}
	}

	return nil
}

// GetServerStatusHandler collects and returns system-level metrics
// plus connection pool health.
func GetServerStatusHandler(c echo.Context) error {
	v, _ := mem.VirtualMemory()
	d, _ := disk.Usage("/")
	hInfo, _ := host.Info()
	uptime := time.Since(StartTime).String()

	// cpu.Percent returns an empty slice on failure.
	cpuUsage := "unavailable"
	if cpuPercent, err := cpu.Percent(time.Second, false); err == nil && len(cpuPercent) > 0 {
		cpuUsage = fmt.Sprintf("%.2f%%", cpuPercent[0])
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"status": "online",
		"runtime": map[string]interface{}{
			"uptime":     uptime,
			"start_time": StartTime.Format(time.RFC3339),
			"os":         hInfo.OS,
			"platform":   hInfo.Platform,
			"arch":       hInfo.KernelArch,
			"hostname":   hInfo.Hostname,
		},
		"cpu": map[string]interface{}{
			"usage_percent": cpuUsage,
			"cores":         hInfo.Procs,
		},
		"memory": map[string]interface{}{
			"total_gb":     fmt.Sprintf("%.2f GB", float64(v.Total)/1024/1024/1024),
			"used_gb":      fmt.Sprintf("%.2f GB", float64(v.Used)/1024/1024/1024),
			"used_percent": fmt.Sprintf("%.2f%%", v.UsedPercent),
			"free_gb":      fmt.Sprintf("%.2f GB", float64(v.Free)/1024/1024/1024),
		},
		"disk": map[string]interface{}{
			"total_gb":     fmt.Sprintf("%.2f GB", float64(d.Total)/1024/1024/1024),
			"used_gb":      fmt.Sprintf("%.2f GB", float64(d.Used)/1024/1024/1024),
			"used_percent": fmt.Sprintf("%.2f%%", d.UsedPercent),
		},
		"database": db.Health(),
	})
}
