package server

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/icecross/crossing"
	"github.com/katalvlaran/icecross/grid"
)

// ErrGridTooLarge indicates a request grid above the configured cell limit.
var ErrGridTooLarge = errors.New("server: grid exceeds the configured cell limit")

// errStepLimit indicates an exhaustive request above the configured step limit.
var errStepLimit = errors.New("server: grid too long for exhaustive search")

// CrossingController serves path-count requests.
type CrossingController struct {
	maxExhaustiveSteps int
	maxCells           int
	log                logrus.FieldLogger
}

// NewCrossingController initializes a CrossingController.
// maxExhaustiveSteps is clamped to crossing.MaxExhaustiveSteps.
func NewCrossingController(maxExhaustiveSteps, maxCells int, log logrus.FieldLogger) *CrossingController {
	if maxExhaustiveSteps > crossing.MaxExhaustiveSteps {
		maxExhaustiveSteps = crossing.MaxExhaustiveSteps
	}
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &CrossingController{
		maxExhaustiveSteps: maxExhaustiveSteps,
		maxCells:           maxCells,
		log:                log,
	}
}

// Register mounts GET /health and POST /crossings.
func (cc *CrossingController) Register(route *gin.RouterGroup) {
	route.GET("/health", cc.health)
	route.POST("/crossings", cc.count)
}

// health reports liveness.
func (cc *CrossingController) health(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// count parses the grid, runs the requested algorithm and replies with the count.
func (cc *CrossingController) count(ctx *gin.Context) {
	id := requestID(ctx)

	var request CrossingRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{ID: id, Error: err.Error()})
		return
	}
	algorithm := strings.ToLower(strings.TrimSpace(request.Algorithm))
	if algorithm == "" {
		algorithm = AlgorithmDynProg
	}

	g, err := cc.buildGrid(request.Rows)
	if err != nil {
		cc.fail(ctx, id, nil, err)
		return
	}

	response := CrossingResponse{
		ID:        id,
		Rows:      g.Rows(),
		Columns:   g.Columns(),
		Steps:     g.Steps(),
		Icebergs:  g.Icebergs(),
		Algorithm: algorithm,
	}
	log := cc.log.WithFields(logrus.Fields{
		"request_id": id.String(),
		"rows":       g.Rows(),
		"columns":    g.Columns(),
		"algorithm":  algorithm,
	})

	start := time.Now()
	switch algorithm {
	case AlgorithmDynProg:
		response.Count, err = crossing.DynProg(g)
	case AlgorithmExhaustive:
		if err = cc.checkSteps(g); err == nil {
			response.Count, err = crossing.Exhaustive(g)
		}
	case AlgorithmBoth:
		if err = cc.checkSteps(g); err == nil {
			var res crossing.Result
			res, err = crossing.Both(ctx.Request.Context(), g)
			if err == nil && res.Exhaustive != res.DynProg {
				err = fmt.Errorf("exhaustive=%d dynprog=%d: %w", res.Exhaustive, res.DynProg, crossing.ErrMismatch)
			}
			response.Count = res.DynProg
			response.Exhaustive = &res.Exhaustive
			response.DynProg = &res.DynProg
		}
	default:
		ctx.JSON(http.StatusBadRequest, ErrorResponse{ID: id, Error: fmt.Sprintf("unknown algorithm %q", request.Algorithm)})
		return
	}
	if err != nil {
		cc.fail(ctx, id, g, err)
		return
	}

	log.WithFields(logrus.Fields{"count": response.Count, "elapsed": time.Since(start).String()}).Debug("paths counted")
	ctx.JSON(http.StatusOK, response)
}

// buildGrid converts request rows into a grid, enforcing the cell limit
// before allocating. Every row is counted, so ragged input cannot slip a
// long row past the limit.
func (cc *CrossingController) buildGrid(rows []string) (*grid.Grid, error) {
	cells := 0
	for _, row := range rows {
		cells += len(row)
		if cells > cc.maxCells {
			return nil, fmt.Errorf("%d rows, limit %d cells: %w", len(rows), cc.maxCells, ErrGridTooLarge)
		}
	}
	return grid.FromRows(rows)
}

// checkSteps applies the configured exhaustive ceiling.
func (cc *CrossingController) checkSteps(g *grid.Grid) error {
	if g.Steps() > cc.maxExhaustiveSteps {
		return fmt.Errorf("%d steps, limit %d: %w", g.Steps(), cc.maxExhaustiveSteps, errStepLimit)
	}
	return nil
}

// fail maps err to a status code and writes an ErrorResponse. For an
// overflow the exact count is computed with DynProgBig.
func (cc *CrossingController) fail(ctx *gin.Context, id uuid.UUID, g *grid.Grid, err error) {
	body := ErrorResponse{ID: id, Error: err.Error()}

	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, grid.ErrEmptyGrid),
		errors.Is(err, grid.ErrNonRectangular),
		errors.Is(err, grid.ErrBadCell):
		status = http.StatusBadRequest
	case errors.Is(err, ErrGridTooLarge):
		status = http.StatusRequestEntityTooLarge
	case errors.Is(err, errStepLimit),
		errors.Is(err, crossing.ErrTooManySteps):
		status = http.StatusUnprocessableEntity
	case errors.Is(err, crossing.ErrCountOverflow):
		status = http.StatusUnprocessableEntity
		if exact, bigErr := crossing.DynProgBig(g); bigErr == nil {
			body.BigCount = exact.String()
		}
	}

	if status >= http.StatusInternalServerError {
		cc.log.WithError(err).WithField("request_id", body.ID.String()).Error("counting failed")
	}
	ctx.JSON(status, body)
}
