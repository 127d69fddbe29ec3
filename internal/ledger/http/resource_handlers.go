package http

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/lifebook/lifebook/internal/httputil"
	"github.com/lifebook/lifebook/internal/ledger/domain"
	"github.com/lifebook/lifebook/internal/ledger/http/dto"
	"github.com/lifebook/lifebook/internal/ledger/usecase"
)

// validator is the shape-check contract every request DTO satisfies.
type validator interface {
	Validate() error
}

// decodeRequest binds and shape-validates a request body, writing the error
// response on failure. The mapper converts the DTO into a domain record.
func decodeRequest[T domain.Entry, Q validator](
	logger *slog.Logger,
	toDomain func(Q) T,
) func(c *gin.Context) (T, bool) {
	return func(c *gin.Context) (T, bool) {
		var zero T
		var req Q

		if err := c.ShouldBindJSON(&req); err != nil {
			httputil.HandleBadRequestGin(c, err, logger)
			return zero, false
		}

		if err := req.Validate(); err != nil {
			httputil.HandleErrorGin(c, err, logger)
			return zero, false
		}

		return toDomain(req), true
	}
}

// NewIncomeHandler creates the HTTP handler for the incomes resource.
func NewIncomeHandler(useCase usecase.UseCase[*domain.Income], logger *slog.Logger) *EntryHandler[*domain.Income] {
	return &EntryHandler[*domain.Income]{
		useCase:  useCase,
		resource: "incomes",
		decode:   decodeRequest[*domain.Income](logger, dto.ToIncome),
		respond:  func(record *domain.Income) any { return dto.ToIncomeResponse(record) },
		listing: func(output usecase.ListOutput[*domain.Income]) any {
			return dto.ToListResponse(output, dto.ToIncomeResponse)
		},
		logger: logger,
	}
}

// NewExpenseHandler creates the HTTP handler for the expenses resource.
func NewExpenseHandler(useCase usecase.UseCase[*domain.Expense], logger *slog.Logger) *EntryHandler[*domain.Expense] {
	return &EntryHandler[*domain.Expense]{
		useCase:  useCase,
		resource: "expenses",
		decode:   decodeRequest[*domain.Expense](logger, dto.ToExpense),
		respond:  func(record *domain.Expense) any { return dto.ToExpenseResponse(record) },
		listing: func(output usecase.ListOutput[*domain.Expense]) any {
			return dto.ToListResponse(output, dto.ToExpenseResponse)
		},
		logger: logger,
	}
}

// NewAssetHandler creates the HTTP handler for the assets resource.
func NewAssetHandler(useCase usecase.UseCase[*domain.Asset], logger *slog.Logger) *EntryHandler[*domain.Asset] {
	return &EntryHandler[*domain.Asset]{
		useCase:  useCase,
		resource: "assets",
		decode:   decodeRequest[*domain.Asset](logger, dto.ToAsset),
		respond:  func(record *domain.Asset) any { return dto.ToAssetResponse(record) },
		listing: func(output usecase.ListOutput[*domain.Asset]) any {
			return dto.ToListResponse(output, dto.ToAssetResponse)
		},
		logger: logger,
	}
}

// NewBookNoteHandler creates the HTTP handler for the book-notes resource.
func NewBookNoteHandler(useCase usecase.UseCase[*domain.BookNote], logger *slog.Logger) *EntryHandler[*domain.BookNote] {
	return &EntryHandler[*domain.BookNote]{
		useCase:  useCase,
		resource: "book-notes",
		decode:   decodeRequest[*domain.BookNote](logger, dto.ToBookNote),
		respond:  func(record *domain.BookNote) any { return dto.ToBookNoteResponse(record) },
		listing: func(output usecase.ListOutput[*domain.BookNote]) any {
			return dto.ToListResponse(output, dto.ToBookNoteResponse)
		},
		logger: logger,
	}
}

// NewDiaryEntryHandler creates the HTTP handler for the diary-entries resource.
func NewDiaryEntryHandler(useCase usecase.UseCase[*domain.DiaryEntry], logger *slog.Logger) *EntryHandler[*domain.DiaryEntry] {
	return &EntryHandler[*domain.DiaryEntry]{
		useCase:  useCase,
		resource: "diary-entries",
		decode:   decodeRequest[*domain.DiaryEntry](logger, dto.ToDiaryEntry),
		respond:  func(record *domain.DiaryEntry) any { return dto.ToDiaryEntryResponse(record) },
		listing: func(output usecase.ListOutput[*domain.DiaryEntry]) any {
			return dto.ToListResponse(output, dto.ToDiaryEntryResponse)
		},
		logger: logger,
	}
}
