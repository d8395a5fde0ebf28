package repo

import (
	"context"
	"errors"

	"paradise-inn/internal/domain/booking"
	"paradise-inn/internal/infra"
	"paradise-inn/internal/pkg/pgconv"
	"paradise-inn/internal/usecase"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

type bookingRepository struct {
	pool *pgxpool.Pool
}

func NewBookingRepository(pool *pgxpool.Pool) usecase.BookingRepository {
	return &bookingRepository{pool: pool}
}

// Create reads the room's existing stays and inserts the new booking inside
// one transaction. The row lock on the room serializes concurrent attempts,
// so the admit decision cannot go stale between the read and the insert.
func (r *bookingRepository) Create(ctx context.Context, b *booking.Booking, admit func(existing []booking.StayInterval) bool) (*usecase.BookingView, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to begin booking transaction", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	const lockRoom = `SELECT id FROM rooms WHERE id = $1 FOR UPDATE`

	var roomID int64
	if err := tx.QueryRow(ctx, lockRoom, b.RoomID()).Scan(&roomID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("room not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock room", err)
	}

	const selectStays = `
		SELECT check_in_date, check_out_date
		FROM bookings
		WHERE room_id = $1`

	rows, err := tx.Query(ctx, selectStays, b.RoomID())
	if err != nil {
		return nil, infra.WrapRepoErr("failed to read existing stays", err)
	}

	var existing []booking.StayInterval
	for rows.Next() {
		var checkIn, checkOut pgtype.Date
		if err := rows.Scan(&checkIn, &checkOut); err != nil {
			rows.Close()
			return nil, infra.WrapRepoErr("failed to scan stay row", err)
		}
		existing = append(existing, booking.ReconstructStayInterval(
			pgconv.TimeFromDate(checkIn), pgconv.TimeFromDate(checkOut),
		))
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate stay rows", err)
	}

	if !admit(existing) {
		return nil, infra.WrapRepoErr("room is occupied for the requested dates", nil, infra.KindConflict)
	}

	const insert = `
		INSERT INTO bookings (check_in_date, check_out_date, num_adults, num_children,
		                      total_guests, confirmation_code, room_id, user_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`

	var id int64
	err = tx.QueryRow(ctx, insert,
		pgconv.DateFromTime(b.Stay().CheckIn()), pgconv.DateFromTime(b.Stay().CheckOut()),
		b.Adults(), b.Children(), b.TotalGuests(), b.ConfirmationCode(),
		b.RoomID(), b.UserID(),
	).Scan(&id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
			return nil, infra.WrapRepoErr("booking references a missing row", err, infra.KindForeignKeyViolated)
		}
		return nil, infra.WrapRepoErr("failed to insert booking", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, infra.WrapRepoErr("failed to commit booking transaction", err)
	}

	return &usecase.BookingView{
		ID:               id,
		CheckIn:          b.Stay().CheckIn(),
		CheckOut:         b.Stay().CheckOut(),
		Adults:           b.Adults(),
		Children:         b.Children(),
		TotalGuests:      b.TotalGuests(),
		ConfirmationCode: b.ConfirmationCode(),
		RoomID:           b.RoomID(),
		UserID:           b.UserID(),
	}, nil
}

func (r *bookingRepository) FindByConfirmationCode(ctx context.Context, code string) (*usecase.BookingView, error) {
	const q = `
		SELECT b.id, b.check_in_date, b.check_out_date, b.num_adults, b.num_children,
		       b.total_guests, b.confirmation_code, b.room_id, b.user_id,
		       r.id, r.room_type, r.room_price, r.room_description, r.room_image_url,
		       u.id, u.email, u.name, u.phone_number, u.role
		FROM bookings b
		JOIN rooms r ON r.id = b.room_id
		JOIN users u ON u.id = b.user_id
		WHERE b.confirmation_code = $1`

	var (
		view      usecase.BookingView
		checkIn   pgtype.Date
		checkOut  pgtype.Date
		roomView  usecase.RoomView
		roomPrice pgtype.Numeric
		userView  usecase.UserView
	)
	err := r.pool.QueryRow(ctx, q, code).Scan(
		&view.ID, &checkIn, &checkOut, &view.Adults, &view.Children,
		&view.TotalGuests, &view.ConfirmationCode, &view.RoomID, &view.UserID,
		&roomView.ID, &roomView.RoomType, &roomPrice, &roomView.Description, &roomView.ImageURL,
		&userView.ID, &userView.Email, &userView.Name, &userView.PhoneNumber, &userView.Role,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by confirmation code", err)
	}

	price, err := pgconv.Float64FromNumeric(roomPrice)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert room price", err)
	}
	roomView.Price = price

	view.CheckIn = pgconv.TimeFromDate(checkIn)
	view.CheckOut = pgconv.TimeFromDate(checkOut)
	view.Room = &roomView
	view.User = &userView

	return &view, nil
}

func (r *bookingRepository) FindByUserID(ctx context.Context, userID int64) ([]usecase.BookingView, error) {
	const q = `
		SELECT b.id, b.check_in_date, b.check_out_date, b.num_adults, b.num_children,
		       b.total_guests, b.confirmation_code, b.room_id, b.user_id,
		       r.id, r.room_type, r.room_price, r.room_description, r.room_image_url
		FROM bookings b
		JOIN rooms r ON r.id = b.room_id
		WHERE b.user_id = $1
		ORDER BY b.id`

	rows, err := r.pool.Query(ctx, q, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list user bookings", err)
	}
	defer rows.Close()

	var views []usecase.BookingView
	for rows.Next() {
		var (
			view      usecase.BookingView
			checkIn   pgtype.Date
			checkOut  pgtype.Date
			roomView  usecase.RoomView
			roomPrice pgtype.Numeric
		)
		err := rows.Scan(
			&view.ID, &checkIn, &checkOut, &view.Adults, &view.Children,
			&view.TotalGuests, &view.ConfirmationCode, &view.RoomID, &view.UserID,
			&roomView.ID, &roomView.RoomType, &roomPrice, &roomView.Description, &roomView.ImageURL,
		)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan user booking row", err)
		}

		price, err := pgconv.Float64FromNumeric(roomPrice)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to convert room price", err)
		}
		roomView.Price = price

		view.CheckIn = pgconv.TimeFromDate(checkIn)
		view.CheckOut = pgconv.TimeFromDate(checkOut)
		view.Room = &roomView
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate user booking rows", err)
	}

	return views, nil
}

func (r *bookingRepository) FindAll(ctx context.Context) ([]usecase.BookingView, error) {
	const q = `
		SELECT id, check_in_date, check_out_date, num_adults, num_children,
		       total_guests, confirmation_code, room_id, user_id
		FROM bookings
		ORDER BY id DESC`

	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}
	defer rows.Close()

	var views []usecase.BookingView
	for rows.Next() {
		view, err := scanBookingRow(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking row", err)
		}
		views = append(views, *view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate booking rows", err)
	}

	return views, nil
}

func (r *bookingRepository) Exists(ctx context.Context, id int64) (bool, error) {
	const q = `SELECT EXISTS (SELECT 1 FROM bookings WHERE id = $1)`

	var exists bool
	if err := r.pool.QueryRow(ctx, q, id).Scan(&exists); err != nil {
		return false, infra.WrapRepoErr("failed to check booking existence", err)
	}
	return exists, nil
}

func (r *bookingRepository) Delete(ctx context.Context, id int64) error {
	const q = `DELETE FROM bookings WHERE id = $1`

	tag, err := r.pool.Exec(ctx, q, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete booking", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return nil
}
