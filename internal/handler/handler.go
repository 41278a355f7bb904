package handler

import (
	"net/http"

	"github.com/campuslib/library-service/internal/errs"
	"github.com/campuslib/library-service/pkg/auth"
	md "github.com/campuslib/library-service/pkg/middleware"
	"github.com/campuslib/library-service/pkg/validate"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type Handler struct {
	svc LibraryService
	log *zap.Logger
}

func New(svc LibraryService, log *zap.Logger) *Handler {
	return &Handler{
		svc: svc,
		log: log,
	}
}

func (h *Handler) NewRouter() *echo.Echo {
	e := echo.New()
	const (
		baseRPS = 10
		apiRPS  = 100
	)
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		StackSize: 4 << 10, // 4 KB
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{http.MethodGet, http.MethodOptions, http.MethodHead, http.MethodPut, http.MethodPatch, http.MethodPost, http.MethodDelete},
		AllowCredentials: true,
	}))

	base := e.Group("", md.NewRateLimiter(baseRPS))
	base.GET("/manage/health", h.Health)

	e.Validator = validate.NewCustomValidator()
	api := e.Group("/api/v1",
		middleware.RequestLoggerWithConfig(md.RequestLoggerConfig()),
		middleware.RequestID(),
		md.NewRateLimiter(apiRPS),
	)

	api.POST("/students", h.Register)

	staff := api.Group("", auth.Middleware)

	staff.GET("/students", h.ListStudents)
	staff.GET("/students/:id", h.GetStudent)
	staff.POST("/students/:id/approve", h.ApproveStudent)
	staff.POST("/students/:id/reject", h.RejectStudent)
	staff.POST("/students/:id/block", h.BlockStudent)
	staff.POST("/students/:id/unblock", h.UnblockStudent)
	staff.POST("/students/:id/card", h.IssueCard)

	staff.GET("/cards/by-barcode/:barcode", h.GetCardByBarcode)
	staff.POST("/cards/:id/lost", h.ReportCardLost)

	staff.POST("/books", h.CreateBook)
	staff.GET("/books", h.ListBooks)
	staff.GET("/books/:id", h.GetBook)
	staff.POST("/books/:id/archive", h.ArchiveBook)
	staff.POST("/books/:id/copies", h.AddCopies)

	staff.GET("/copies/by-barcode/:barcode", h.GetCopyByBarcode)
	staff.POST("/copies/:id/damage", h.MarkCopyDamaged)

	staff.POST("/loans", h.Issue)
	staff.GET("/loans", h.ListLoans)
	staff.POST("/loans/return", h.Return)
	staff.POST("/loans/lost", h.MarkLoanLost)

	staff.GET("/fines", h.ListFines)
	staff.POST("/fines", h.AttachFine)
	staff.POST("/fines/:id/pay", h.PayFine)
	staff.POST("/fines/:id/waive", h.WaiveFine)

	staff.GET("/reports/dashboard", h.Dashboard)
	staff.GET("/reports/trend", h.LoanTrend)
	staff.GET("/reports/loans/export", h.ExportLoans)

	return e
}

func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

// httpError maps domain sentinels onto status codes; anything unexpected is a
// 500 for the infrastructure layer to surface.
func httpError(err error) *echo.HTTPError {
	switch {
	case errors.Is(err, errs.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, errs.ErrRejectReason):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, errs.ErrConflict),
		errors.Is(err, errs.ErrStudentNotEligible),
		errors.Is(err, errs.ErrCopyNotAvailable),
		errors.Is(err, errs.ErrLoanLimitExceeded),
		errors.Is(err, errs.ErrNoActiveLoanForCopy),
		errors.Is(err, errs.ErrInvalidTransition),
		errors.Is(err, errs.ErrAlreadyInState),
		errors.Is(err, errs.ErrInvalidState):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
}
