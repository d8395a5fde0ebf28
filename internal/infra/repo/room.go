package repo

import (
	"context"
	"errors"
	"time"

	"paradise-inn/internal/domain/room"
	"paradise-inn/internal/infra"
	"paradise-inn/internal/pkg/pgconv"
	"paradise-inn/internal/usecase"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

type roomRepository struct {
	pool *pgxpool.Pool
}

func NewRoomRepository(pool *pgxpool.Pool) usecase.RoomRepository {
	return &roomRepository{pool: pool}
}

func (r *roomRepository) Create(ctx context.Context, rm *room.Room) (*usecase.RoomView, error) {
	const q = `
		INSERT INTO rooms (room_type, room_price, room_description, room_image_url)
		VALUES ($1, $2, $3, $4)
		RETURNING id`

	var id int64
	err := r.pool.QueryRow(ctx, q,
		rm.RoomType(), rm.Price(), rm.Description(), rm.ImageURL(),
	).Scan(&id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to insert room", err)
	}

	return &usecase.RoomView{
		ID:          id,
		RoomType:    rm.RoomType(),
		Price:       rm.Price(),
		Description: rm.Description(),
		ImageURL:    rm.ImageURL(),
	}, nil
}

func (r *roomRepository) Update(ctx context.Context, rm *room.Room) (*usecase.RoomView, error) {
	const q = `
		UPDATE rooms
		SET room_type = $2, room_price = $3, room_description = $4, room_image_url = $5
		WHERE id = $1`

	tag, err := r.pool.Exec(ctx, q,
		rm.ID(), rm.RoomType(), rm.Price(), rm.Description(), rm.ImageURL(),
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to update room", err)
	}
	if tag.RowsAffected() == 0 {
		return nil, infra.WrapRepoErr("room not found", pgx.ErrNoRows, infra.KindNotFound)
	}

	return &usecase.RoomView{
		ID:          rm.ID(),
		RoomType:    rm.RoomType(),
		Price:       rm.Price(),
		Description: rm.Description(),
		ImageURL:    rm.ImageURL(),
	}, nil
}

func (r *roomRepository) FindByID(ctx context.Context, id int64) (*usecase.RoomView, error) {
	const q = `
		SELECT id, room_type, room_price, room_description, room_image_url
		FROM rooms
		WHERE id = $1`

	view, err := scanRoomRow(r.pool.QueryRow(ctx, q, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("room not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find room by ID", err)
	}
	return view, nil
}

func (r *roomRepository) FindByIDWithBookings(ctx context.Context, id int64) (*usecase.RoomView, error) {
	view, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	const q = `
		SELECT id, check_in_date, check_out_date, num_adults, num_children,
		       total_guests, confirmation_code, room_id, user_id
		FROM bookings
		WHERE room_id = $1
		ORDER BY id`

	rows, err := r.pool.Query(ctx, q, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list room bookings", err)
	}
	defer rows.Close()

	for rows.Next() {
		bv, err := scanBookingRow(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking row", err)
		}
		view.Bookings = append(view.Bookings, *bv)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate booking rows", err)
	}

	return view, nil
}

func (r *roomRepository) FindAll(ctx context.Context) ([]usecase.RoomView, error) {
	const q = `
		SELECT id, room_type, room_price, room_description, room_image_url
		FROM rooms
		ORDER BY id DESC`

	return r.queryRooms(ctx, q)
}

func (r *roomRepository) DistinctTypes(ctx context.Context) ([]string, error) {
	const q = `SELECT DISTINCT room_type FROM rooms ORDER BY room_type`

	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list room types", err)
	}
	defer rows.Close()

	var types []string
	for rows.Next() {
		var t string
		if err := rows.Scan(&t); err != nil {
			return nil, infra.WrapRepoErr("failed to scan room type", err)
		}
		types = append(types, t)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate room types", err)
	}

	return types, nil
}

func (r *roomRepository) FindAvailable(ctx context.Context) ([]usecase.RoomView, error) {
	const q = `
		SELECT id, room_type, room_price, room_description, room_image_url
		FROM rooms
		WHERE id NOT IN (SELECT room_id FROM bookings)
		ORDER BY id DESC`

	return r.queryRooms(ctx, q)
}

// FindAvailableByDatesAndType is a coarse storage-side prefilter: it drops
// rooms with a booking whose dates touch the requested range at all. The
// interval rules in the domain layer decide the final answer for a specific
// candidate stay.
func (r *roomRepository) FindAvailableByDatesAndType(ctx context.Context, checkIn, checkOut time.Time, roomType string) ([]usecase.RoomView, error) {
	const q = `
		SELECT id, room_type, room_price, room_description, room_image_url
		FROM rooms
		WHERE room_type ILIKE '%' || $3 || '%'
		  AND id NOT IN (
			SELECT room_id FROM bookings
			WHERE check_in_date <= $2 AND check_out_date >= $1
		  )
		ORDER BY id DESC`

	return r.queryRooms(ctx, q, pgconv.DateFromTime(checkIn), pgconv.DateFromTime(checkOut), roomType)
}

func (r *roomRepository) Delete(ctx context.Context, id int64) error {
	const q = `DELETE FROM rooms WHERE id = $1`

	tag, err := r.pool.Exec(ctx, q, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete room", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("room not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return nil
}

func (r *roomRepository) queryRooms(ctx context.Context, q string, args ...any) ([]usecase.RoomView, error) {
	rows, err := r.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list rooms", err)
	}
	defer rows.Close()

	var views []usecase.RoomView
	for rows.Next() {
		view, err := scanRoomRow(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan room row", err)
		}
		views = append(views, *view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate room rows", err)
	}

	return views, nil
}

func scanRoomRow(row pgx.Row) (*usecase.RoomView, error) {
	var (
		view  usecase.RoomView
		price pgtype.Numeric
	)
	if err := row.Scan(&view.ID, &view.RoomType, &price, &view.Description, &view.ImageURL); err != nil {
		return nil, err
	}

	f, err := pgconv.Float64FromNumeric(price)
	if err != nil {
		return nil, err
	}
	view.Price = f

	return &view, nil
}

func scanBookingRow(row pgx.Row) (*usecase.BookingView, error) {
	var (
		view     usecase.BookingView
		checkIn  pgtype.Date
		checkOut pgtype.Date
	)
	err := row.Scan(
		&view.ID, &checkIn, &checkOut, &view.Adults, &view.Children,
		&view.TotalGuests, &view.ConfirmationCode, &view.RoomID, &view.UserID,
	)
	if err != nil {
		return nil, err
	}

	view.CheckIn = pgconv.TimeFromDate(checkIn)
	view.CheckOut = pgconv.TimeFromDate(checkOut)

	return &view, nil
}
