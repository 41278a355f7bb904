package handler_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/campuslib/library-service/internal/errs"
	"github.com/campuslib/library-service/internal/handler"
	"github.com/campuslib/library-service/internal/model"
	"github.com/campuslib/library-service/pkg/auth"
	"github.com/campuslib/library-service/pkg/validate"
	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	service_mocks "github.com/campuslib/library-service/internal/handler/mocks"
)

func mustDecimal(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return d
}

func staffRequest(method, target, body string) *http.Request {
	var r *http.Request
	if body == "" {
		r = httptest.NewRequest(method, target, http.NoBody)
	} else {
		r = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	return r.WithContext(auth.SetAuthContext(r.Context(), "librarian", auth.RoleLibrarian))
}

func TestHandler_Issue(t *testing.T) {
	t.Parallel()
	type input struct {
		body string
	}
	type response struct {
		expectedCode int
		expectedBody string
	}
	type mockBehavior func(r *service_mocks.MockLibraryService)

	dueDate := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)

	var tests = []struct {
		name         string
		mockBehavior mockBehavior
		input        input
		response     response
	}{
		{
			name: "ok",
			mockBehavior: func(r *service_mocks.MockLibraryService) {
				r.EXPECT().
					Issue(gomock.Any(), 1, 7, "librarian").
					Return(model.IssueReceipt{
						LoanUid:     "1bb10261-9a49-4a71-a53d-5ed7be06c750",
						StudentID:   1,
						BookID:      2,
						StudentName: "Asel",
						BookTitle:   "The Go Programming Language",
						DueDate:     dueDate,
					}, nil)
			},
			input: input{body: `{"studentId":1,"bookCopyId":7}`},
			response: response{
				expectedCode: http.StatusCreated,
				expectedBody: `{"loanUid":"1bb10261-9a49-4a71-a53d-5ed7be06c750","studentId":1,"bookId":2,"studentName":"Asel","bookTitle":"The Go Programming Language","dueDate":"2024-04-01T00:00:00Z"}`,
			},
		},
		{
			name: "err. copy not available",
			mockBehavior: func(r *service_mocks.MockLibraryService) {
				r.EXPECT().
					Issue(gomock.Any(), 1, 7, "librarian").
					Return(model.IssueReceipt{}, errs.ErrCopyNotAvailable)
			},
			input: input{body: `{"studentId":1,"bookCopyId":7}`},
			response: response{
				expectedCode: http.StatusConflict,
				expectedBody: `{"message":"book copy is not available"}`,
			},
		},
		{
			name: "err. loan limit",
			mockBehavior: func(r *service_mocks.MockLibraryService) {
				r.EXPECT().
					Issue(gomock.Any(), 1, 7, "librarian").
					Return(model.IssueReceipt{}, errs.ErrLoanLimitExceeded)
			},
			input: input{body: `{"studentId":1,"bookCopyId":7}`},
			response: response{
				expectedCode: http.StatusConflict,
				expectedBody: `{"message":"loan limit exceeded"}`,
			},
		},
		{
			name: "err. student not eligible",
			mockBehavior: func(r *service_mocks.MockLibraryService) {
				r.EXPECT().
					Issue(gomock.Any(), 1, 7, "librarian").
					Return(model.IssueReceipt{}, errs.ErrStudentNotEligible)
			},
			input: input{body: `{"studentId":1,"bookCopyId":7}`},
			response: response{
				expectedCode: http.StatusConflict,
				expectedBody: `{"message":"student is not eligible to borrow"}`,
			},
		},
		{
			name:         "err. missing copy id",
			mockBehavior: func(r *service_mocks.MockLibraryService) {},
			input:        input{body: `{"studentId":1}`},
			response: response{
				expectedCode: http.StatusBadRequest,
			},
		},
		{
			name: "err. internal",
			mockBehavior: func(r *service_mocks.MockLibraryService) {
				r.EXPECT().
					Issue(gomock.Any(), 1, 7, "librarian").
					Return(model.IssueReceipt{}, errors.New("db internal"))
			},
			input: input{body: `{"studentId":1,"bookCopyId":7}`},
			response: response{
				expectedCode: http.StatusInternalServerError,
				expectedBody: `{"message":"db internal"}`,
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			svc := service_mocks.NewMockLibraryService(c)
			log := zap.NewExample().Named("test")
			h := handler.New(svc, log)

			e := echo.New()
			e.Validator = validate.NewCustomValidator()
			e.POST("/loans", h.Issue)

			tt.mockBehavior(svc)

			w := httptest.NewRecorder()
			e.ServeHTTP(w, staffRequest(http.MethodPost, "/loans", tt.input.body))

			require.Equal(t, tt.response.expectedCode, w.Code)
			if tt.response.expectedBody != "" {
				require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
			}
		})
	}
}

func TestHandler_Return(t *testing.T) {
	t.Parallel()
	type response struct {
		expectedCode int
		expectedBody string
	}
	type mockBehavior func(r *service_mocks.MockLibraryService)

	var tests = []struct {
		name         string
		mockBehavior mockBehavior
		body         string
		response     response
	}{
		{
			name: "ok with overdue fine",
			mockBehavior: func(r *service_mocks.MockLibraryService) {
				r.EXPECT().
					Return(gomock.Any(), 7, "librarian", "scuffed cover").
					Return(model.ReturnReceipt{
						LoanUid:      "1bb10261-9a49-4a71-a53d-5ed7be06c750",
						StudentID:    1,
						BookID:       2,
						ReturnedDate: time.Date(2024, 4, 7, 0, 0, 0, 0, time.UTC),
						OverdueDays:  6,
						FineAmount:   mustDecimal(t, "30"),
					}, nil)
			},
			body: `{"bookCopyId":7,"notes":"scuffed cover"}`,
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `{"loanUid":"1bb10261-9a49-4a71-a53d-5ed7be06c750","studentId":1,"bookId":2,"returnedDate":"2024-04-07T00:00:00Z","overdueDays":6,"fineAmount":"30"}`,
			},
		},
		{
			name: "err. no active loan",
			mockBehavior: func(r *service_mocks.MockLibraryService) {
				r.EXPECT().
					Return(gomock.Any(), 7, "librarian", "").
					Return(model.ReturnReceipt{}, errs.ErrNoActiveLoanForCopy)
			},
			body: `{"bookCopyId":7}`,
			response: response{
				expectedCode: http.StatusConflict,
				expectedBody: `{"message":"no active loan for this copy"}`,
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			svc := service_mocks.NewMockLibraryService(c)
			h := handler.New(svc, zap.NewExample().Named("test"))

			e := echo.New()
			e.Validator = validate.NewCustomValidator()
			e.POST("/loans/return", h.Return)

			tt.mockBehavior(svc)

			w := httptest.NewRecorder()
			e.ServeHTTP(w, staffRequest(http.MethodPost, "/loans/return", tt.body))

			require.Equal(t, tt.response.expectedCode, w.Code)
			require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}

func TestHandler_RouterRecoversPanic(t *testing.T) {
	t.Parallel()
	c := gomock.NewController(t)
	defer c.Finish()
	svc := service_mocks.NewMockLibraryService(c)
	h := handler.New(svc, zap.NewNop())

	e := h.NewRouter()
	e.GET("/boom", func(echo.Context) error { panic("boom") })

	w := httptest.NewRecorder()
	e.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", http.NoBody))
	require.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestHandler_ApproveStudent(t *testing.T) {
	t.Parallel()
	type mockBehavior func(r *service_mocks.MockLibraryService)

	var tests = []struct {
		name         string
		mockBehavior mockBehavior
		id           string
		expectedCode int
		expectedBody string
	}{
		{
			name: "ok",
			mockBehavior: func(r *service_mocks.MockLibraryService) {
				r.EXPECT().ApproveStudent(gomock.Any(), 3, "librarian").Return(nil)
			},
			id:           "3",
			expectedCode: http.StatusOK,
		},
		{
			name: "err. already approved",
			mockBehavior: func(r *service_mocks.MockLibraryService) {
				r.EXPECT().ApproveStudent(gomock.Any(), 3, "librarian").Return(errs.ErrInvalidTransition)
			},
			id:           "3",
			expectedCode: http.StatusConflict,
			expectedBody: `{"message":"invalid status transition"}`,
		},
		{
			name:         "err. bad id",
			mockBehavior: func(r *service_mocks.MockLibraryService) {},
			id:           "abc",
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"message":"invalid id"}`,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			svc := service_mocks.NewMockLibraryService(c)
			h := handler.New(svc, zap.NewExample().Named("test"))

			e := echo.New()
			e.Validator = validate.NewCustomValidator()
			e.POST("/students/:id/approve", h.ApproveStudent)

			tt.mockBehavior(svc)

			w := httptest.NewRecorder()
			e.ServeHTTP(w, staffRequest(http.MethodPost, fmt.Sprintf("/students/%s/approve", tt.id), ""))

			require.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedBody != "" {
				require.Equal(t, tt.expectedBody, strings.Trim(w.Body.String(), "\n"))
			}
		})
	}
}

func TestHandler_PayFine(t *testing.T) {
	t.Parallel()
	type mockBehavior func(r *service_mocks.MockLibraryService)

	var tests = []struct {
		name         string
		mockBehavior mockBehavior
		body         string
		expectedCode int
		expectedBody string
	}{
		{
			name: "ok",
			mockBehavior: func(r *service_mocks.MockLibraryService) {
				r.EXPECT().PayFine(gomock.Any(), 5, "cash").Return(nil)
			},
			body:         `{"method":"cash"}`,
			expectedCode: http.StatusOK,
		},
		{
			name: "err. already settled",
			mockBehavior: func(r *service_mocks.MockLibraryService) {
				r.EXPECT().PayFine(gomock.Any(), 5, "cash").Return(errs.ErrInvalidState)
			},
			body:         `{"method":"cash"}`,
			expectedCode: http.StatusConflict,
			expectedBody: `{"message":"fine is already settled"}`,
		},
		{
			name:         "err. bad method",
			mockBehavior: func(r *service_mocks.MockLibraryService) {},
			body:         `{"method":"barter"}`,
			expectedCode: http.StatusBadRequest,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			svc := service_mocks.NewMockLibraryService(c)
			h := handler.New(svc, zap.NewExample().Named("test"))

			e := echo.New()
			e.Validator = validate.NewCustomValidator()
			e.POST("/fines/:id/pay", h.PayFine)

			tt.mockBehavior(svc)

			w := httptest.NewRecorder()
			e.ServeHTTP(w, staffRequest(http.MethodPost, "/fines/5/pay", tt.body))

			require.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedBody != "" {
				require.Equal(t, tt.expectedBody, strings.Trim(w.Body.String(), "\n"))
			}
		})
	}
}
