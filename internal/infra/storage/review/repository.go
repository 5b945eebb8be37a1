package review

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/m04kA/TravelAgency-BackOffice/internal/domain"
	"github.com/m04kA/TravelAgency-BackOffice/internal/infra/storage/pgerr"
	"github.com/m04kA/TravelAgency-BackOffice/pkg/dbmetrics"
	"github.com/m04kA/TravelAgency-BackOffice/pkg/psqlbuilder"
)

// Repository репозиторий отзывов
type Repository struct {
	db DBExecutor
}

func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет отзыв; пара (клиент, тур) уникальна
func (r *Repository) Create(ctx context.Context, in domain.NewReview) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	var comment interface{}
	if in.Comment != "" {
		comment = in.Comment
	}

	query, args, err := psqlbuilder.Insert("reviews").
		Columns("tourid", "clientid", "rating", "description").
		Values(in.TourID, in.ClientID, in.Rating, comment).
		Suffix("RETURNING reviewid").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var id int64
	err = executor.QueryRowContext(ctx, query, args...).Scan(&id)
	switch {
	case pgerr.IsUniqueViolation(err, "reviews_client_tour_key"):
		return 0, ErrAlreadyReviewed
	case pgerr.IsCheckViolation(err, "reviews_rating_check"):
		return 0, ErrInvalidRating
	case pgerr.IsForeignKeyViolation(err, ""):
		return 0, ErrInvalidReference
	case err != nil:
		return 0, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return id, nil
}

// ListAll все отзывы с туром и автором, новые первыми
func (r *Repository) ListAll(ctx context.Context) ([]domain.Review, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"r.reviewid",
		"r.tourid",
		"t.destination",
		"r.clientid",
		"c.firstname || ' ' || c.lastname AS client_name",
		"r.reviewdate",
		"r.rating",
		"r.description",
	).
		From("reviews r").
		Join("tours t ON t.tourid = r.tourid").
		Join("clients c ON c.clientid = r.clientid").
		OrderBy("r.reviewdate DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListAll - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListAll - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	reviews := make([]domain.Review, 0)
	for rows.Next() {
		var (
			rv      domain.Review
			comment sql.NullString
		)
		if err := rows.Scan(
			&rv.ID, &rv.TourID, &rv.TourName, &rv.ClientID, &rv.ClientName, &rv.Date, &rv.Rating, &comment,
		); err != nil {
			return nil, fmt.Errorf("%w: ListAll - scan review: %v", ErrScanRow, err)
		}
		rv.Comment = comment.String
		reviews = append(reviews, rv)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListAll - iterate rows: %v", ErrScanRow, err)
	}

	return reviews, nil
}
