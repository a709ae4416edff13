package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	domainErrors "github.com/Chen-HR/SDD-BreakfastOrderingSystem-Practice/internal/domain/errors"
	"github.com/Chen-HR/SDD-BreakfastOrderingSystem-Practice/internal/domain/model"
	"github.com/Chen-HR/SDD-BreakfastOrderingSystem-Practice/internal/domain/repository"
)

// pgxPool is the subset of pgxpool.Pool the storage relies on. Tests
// substitute a mock pool through newPgxPool.
type pgxPool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
	Ping(ctx context.Context) error
	Close()
}

var newPgxPool = func(ctx context.Context, cfg *pgxpool.Config) (pgxPool, error) {
	return pgxpool.NewWithConfig(ctx, cfg)
}

// Storage acts as repository facade backed by PostgreSQL.
type Storage struct {
	pool   pgxPool
	logger *slog.Logger
}

type userRepository struct {
	storage *Storage
}

type menuRepository struct {
	storage *Storage
}

type orderRepository struct {
	storage *Storage
}

// New creates storage with schema initialization.
func New(ctx context.Context, dsn string, logger *slog.Logger) (*Storage, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}

	pool, err := newPgxPool(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}

	storage := &Storage{pool: pool, logger: logger}
	if err := storage.initSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return storage, nil
}

// Close releases database resources.
func (s *Storage) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// Factory methods for domain repositories.
func (s *Storage) Users() repository.UserRepository {
	return &userRepository{storage: s}
}

func (s *Storage) Menu() repository.MenuRepository {
	return &menuRepository{storage: s}
}

func (s *Storage) Orders() repository.OrderRepository {
	return &orderRepository{storage: s}
}

func (s *Storage) initSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
            id BIGSERIAL PRIMARY KEY,
            email TEXT UNIQUE NOT NULL,
            password_hash TEXT NOT NULL,
            role TEXT NOT NULL DEFAULT 'customer' CHECK (role IN ('customer', 'admin')),
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS menu_items (
            id BIGSERIAL PRIMARY KEY,
            name TEXT UNIQUE NOT NULL,
            description TEXT NOT NULL DEFAULT '',
            price NUMERIC(10,2) NOT NULL CHECK (price >= 0),
            stock_level INTEGER NOT NULL DEFAULT 0 CHECK (stock_level >= 0),
            image_url TEXT NOT NULL DEFAULT '',
            available BOOLEAN NOT NULL DEFAULT TRUE
        )`,
		`CREATE TABLE IF NOT EXISTS orders (
            id BIGSERIAL PRIMARY KEY,
            user_id BIGINT NOT NULL REFERENCES users(id),
            number TEXT UNIQUE NOT NULL,
            status TEXT NOT NULL CHECK (status IN ('pending', 'processing', 'completed', 'cancelled')),
            total_amount NUMERIC(10,2) NOT NULL,
            delivery_address TEXT NOT NULL DEFAULT '',
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS order_items (
            id BIGSERIAL PRIMARY KEY,
            order_id BIGINT NOT NULL REFERENCES orders(id),
            menu_item_id BIGINT NOT NULL REFERENCES menu_items(id),
            item_name TEXT NOT NULL,
            quantity INTEGER NOT NULL CHECK (quantity >= 1),
            unit_price NUMERIC(10,2) NOT NULL,
            subtotal NUMERIC(10,2) NOT NULL
        )`,
		`CREATE INDEX IF NOT EXISTS idx_orders_user ON orders(user_id, created_at DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_orders_status ON orders(status, created_at)`,
		`CREATE INDEX IF NOT EXISTS idx_order_items_order ON order_items(order_id)`,
	}

	for _, stmt := range statements {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}

	return nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// --- UserRepository implementation ---

func (r *userRepository) Create(ctx context.Context, email, passwordHash string, role model.Role) (*model.User, error) {
	const query = `INSERT INTO users (email, password_hash, role) VALUES ($1, $2, $3) RETURNING id, created_at`
	var u model.User
	err := r.storage.pool.QueryRow(ctx, query, email, passwordHash, role).Scan(&u.ID, &u.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domainErrors.ErrAlreadyExists
		}
		return nil, err
	}
	u.Email = email
	u.PasswordHash = passwordHash
	u.Role = role
	return &u, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	const query = `SELECT id, email, password_hash, role, created_at FROM users WHERE email=$1`
	var u model.User
	err := r.storage.pool.QueryRow(ctx, query, email).Scan(&u.ID, &u.Email, &u.PasswordHash, &u.Role, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *userRepository) GetByID(ctx context.Context, id int64) (*model.User, error) {
	const query = `SELECT id, email, password_hash, role, created_at FROM users WHERE id=$1`
	var u model.User
	err := r.storage.pool.QueryRow(ctx, query, id).Scan(&u.ID, &u.Email, &u.PasswordHash, &u.Role, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

// --- MenuRepository implementation ---

func (r *menuRepository) Create(ctx context.Context, item *model.MenuItem) (*model.MenuItem, error) {
	const query = `INSERT INTO menu_items (name, description, price, stock_level, image_url, available)
                   VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	created := *item
	err := r.storage.pool.QueryRow(ctx, query, item.Name, item.Description, item.Price, item.StockLevel, item.ImageURL, item.Available).Scan(&created.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domainErrors.ErrAlreadyExists
		}
		return nil, err
	}
	return &created, nil
}

func (r *menuRepository) GetByID(ctx context.Context, id int64) (*model.MenuItem, error) {
	const query = `SELECT id, name, description, price, stock_level, image_url, available FROM menu_items WHERE id=$1`
	var item model.MenuItem
	err := r.storage.pool.QueryRow(ctx, query, id).Scan(&item.ID, &item.Name, &item.Description, &item.Price, &item.StockLevel, &item.ImageURL, &item.Available)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &item, nil
}

func (r *menuRepository) ListAvailable(ctx context.Context) ([]model.MenuItem, error) {
	const query = `SELECT id, name, description, price, stock_level, image_url, available
                   FROM menu_items WHERE available AND stock_level > 0 ORDER BY name`
	rows, err := r.storage.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.MenuItem
	for rows.Next() {
		var item model.MenuItem
		if err := rows.Scan(&item.ID, &item.Name, &item.Description, &item.Price, &item.StockLevel, &item.ImageURL, &item.Available); err != nil {
			return nil, err
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *menuRepository) UpdatePrice(ctx context.Context, id int64, price decimal.Decimal) error {
	const query = `UPDATE menu_items SET price=$1 WHERE id=$2`
	tag, err := r.storage.pool.Exec(ctx, query, price, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *menuRepository) Restock(ctx context.Context, id int64, delta int) (*model.MenuItem, error) {
	const query = `UPDATE menu_items SET stock_level = stock_level + $1 WHERE id=$2
                   RETURNING id, name, description, price, stock_level, image_url, available`
	var item model.MenuItem
	err := r.storage.pool.QueryRow(ctx, query, delta, id).Scan(&item.ID, &item.Name, &item.Description, &item.Price, &item.StockLevel, &item.ImageURL, &item.Available)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &item, nil
}

// --- OrderRepository implementation ---

func newOrderNumber() string {
	return "ORD-" + uuid.NewString()
}

// Create runs the whole order-creation unit of work: every requested
// line locks its menu item row, checks stock, decrements it and freezes
// the unit price. The order row and its items commit together or not at
// all. The first failing line aborts the transaction.
func (r *orderRepository) Create(ctx context.Context, userID int64, deliveryAddress string, lines []model.OrderLine) (*model.Order, error) {
	order := &model.Order{
		UserID:          userID,
		Number:          newOrderNumber(),
		Status:          model.OrderStatusPending,
		DeliveryAddress: deliveryAddress,
	}

	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		total := decimal.Zero
		items := make([]model.OrderItem, 0, len(lines))

		for _, line := range lines {
			const lockItem = `SELECT name, price, stock_level FROM menu_items WHERE id=$1 FOR UPDATE`
			var (
				name  string
				price decimal.Decimal
				stock int
			)
			if err := tx.QueryRow(ctx, lockItem, line.MenuItemID).Scan(&name, &price, &stock); err != nil {
				if errors.Is(err, pgx.ErrNoRows) {
					return fmt.Errorf("menu item %d: %w", line.MenuItemID, domainErrors.ErrNotFound)
				}
				return err
			}
			if stock < line.Quantity {
				return &domainErrors.StockError{ItemName: name, Available: stock, Requested: line.Quantity}
			}

			const decrement = `UPDATE menu_items SET stock_level = stock_level - $1 WHERE id=$2`
			if _, err := tx.Exec(ctx, decrement, line.Quantity, line.MenuItemID); err != nil {
				return err
			}

			subtotal := price.Mul(decimal.NewFromInt(int64(line.Quantity)))
			total = total.Add(subtotal)
			items = append(items, model.OrderItem{
				MenuItemID: line.MenuItemID,
				ItemName:   name,
				Quantity:   line.Quantity,
				UnitPrice:  price,
				Subtotal:   subtotal,
			})
		}

		const insertOrder = `INSERT INTO orders (user_id, number, status, total_amount, delivery_address)
                             VALUES ($1, $2, $3, $4, $5) RETURNING id, created_at, updated_at`
		if err := tx.QueryRow(ctx, insertOrder, userID, order.Number, order.Status, total, deliveryAddress).
			Scan(&order.ID, &order.CreatedAt, &order.UpdatedAt); err != nil {
			return err
		}

		const insertItem = `INSERT INTO order_items (order_id, menu_item_id, item_name, quantity, unit_price, subtotal)
                            VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
		for i := range items {
			items[i].OrderID = order.ID
			if err := tx.QueryRow(ctx, insertItem, order.ID, items[i].MenuItemID, items[i].ItemName, items[i].Quantity, items[i].UnitPrice, items[i].Subtotal).
				Scan(&items[i].ID); err != nil {
				return err
			}
		}

		order.TotalAmount = total
		order.Items = items
		return nil
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}

func (r *orderRepository) GetByID(ctx context.Context, id int64) (*model.Order, error) {
	const query = `SELECT id, user_id, number, status, total_amount, delivery_address, created_at, updated_at
                   FROM orders WHERE id=$1`
	var o model.Order
	err := r.storage.pool.QueryRow(ctx, query, id).
		Scan(&o.ID, &o.UserID, &o.Number, &o.Status, &o.TotalAmount, &o.DeliveryAddress, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}

	items, err := r.loadItems(ctx, []int64{o.ID})
	if err != nil {
		return nil, err
	}
	o.Items = items[o.ID]
	return &o, nil
}

func (r *orderRepository) ListByUser(ctx context.Context, userID int64) ([]model.Order, error) {
	const query = `SELECT id, user_id, number, status, total_amount, delivery_address, created_at, updated_at
                   FROM orders WHERE user_id=$1 ORDER BY created_at DESC`
	rows, err := r.storage.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	orders, err := scanOrders(rows)
	if err != nil {
		return nil, err
	}
	if err := r.attachItems(ctx, orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// List applies conjunctive filters, newest first, with page-based
// pagination. The second return value is the total match count.
func (r *orderRepository) List(ctx context.Context, filter repository.OrderFilter, page repository.PageRequest) ([]model.Order, int, error) {
	where := ""
	args := []any{}
	addClause := func(expr string, value any) {
		args = append(args, value)
		if where == "" {
			where = " WHERE "
		} else {
			where += " AND "
		}
		where += fmt.Sprintf(expr, len(args))
	}

	if filter.UserID != nil {
		addClause("user_id=$%d", *filter.UserID)
	}
	if filter.Status != nil {
		addClause("status=$%d", *filter.Status)
	}
	if filter.CreatedFrom != nil {
		addClause("created_at >= $%d", *filter.CreatedFrom)
	}
	if filter.CreatedBefore != nil {
		addClause("created_at < $%d", *filter.CreatedBefore)
	}

	var total int
	countQuery := `SELECT COUNT(*) FROM orders` + where
	if err := r.storage.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	listQuery := `SELECT id, user_id, number, status, total_amount, delivery_address, created_at, updated_at FROM orders` +
		where + fmt.Sprintf(` ORDER BY created_at DESC LIMIT $%d OFFSET $%d`, len(args)+1, len(args)+2)
	args = append(args, page.PerPage, page.Offset())

	rows, err := r.storage.pool.Query(ctx, listQuery, args...)
	if err != nil {
		return nil, 0, err
	}
	orders, err := scanOrders(rows)
	if err != nil {
		return nil, 0, err
	}
	if err := r.attachItems(ctx, orders); err != nil {
		return nil, 0, err
	}
	return orders, total, nil
}

// UpdateStatus locks the order row and applies the state machine. A
// request for the current status succeeds without touching the row.
func (r *orderRepository) UpdateStatus(ctx context.Context, orderID int64, status model.OrderStatus) (*model.Order, bool, error) {
	var (
		order   model.Order
		changed bool
	)
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		const lockOrder = `SELECT id, user_id, number, status, total_amount, delivery_address, created_at, updated_at
                           FROM orders WHERE id=$1 FOR UPDATE`
		err := tx.QueryRow(ctx, lockOrder, orderID).
			Scan(&order.ID, &order.UserID, &order.Number, &order.Status, &order.TotalAmount, &order.DeliveryAddress, &order.CreatedAt, &order.UpdatedAt)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return domainErrors.ErrNotFound
			}
			return err
		}

		if order.Status == status {
			return nil
		}
		if !order.Status.CanTransitionTo(status) {
			return &domainErrors.TransitionError{From: string(order.Status), To: string(status)}
		}

		const update = `UPDATE orders SET status=$1, updated_at=NOW() WHERE id=$2 RETURNING updated_at`
		if err := tx.QueryRow(ctx, update, status, orderID).Scan(&order.UpdatedAt); err != nil {
			return err
		}
		order.Status = status
		changed = true
		return nil
	})
	if err != nil {
		return nil, false, err
	}
	return &order, changed, nil
}

// ClaimPendingBatch moves up to limit pending orders to processing and
// returns them, skipping rows locked by concurrent claimers.
func (r *orderRepository) ClaimPendingBatch(ctx context.Context, limit int) ([]model.Order, error) {
	const selectQuery = `SELECT id, user_id, number, status, total_amount, delivery_address, created_at, updated_at
                         FROM orders
                         WHERE status='pending'
                         ORDER BY created_at
                         LIMIT $1
                         FOR UPDATE SKIP LOCKED`

	var orders []model.Order
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		rows, err := tx.Query(ctx, selectQuery, limit)
		if err != nil {
			return err
		}
		claimed, err := scanOrders(rows)
		if err != nil {
			return err
		}
		for i := range claimed {
			if _, err := tx.Exec(ctx, `UPDATE orders SET status='processing', updated_at=NOW() WHERE id=$1`, claimed[i].ID); err != nil {
				return err
			}
			claimed[i].Status = model.OrderStatusProcessing
		}
		orders = claimed
		return nil
	})
	if err != nil {
		return nil, err
	}
	return orders, nil
}

func scanOrders(rows pgx.Rows) ([]model.Order, error) {
	defer rows.Close()

	var result []model.Order
	for rows.Next() {
		var o model.Order
		if err := rows.Scan(&o.ID, &o.UserID, &o.Number, &o.Status, &o.TotalAmount, &o.DeliveryAddress, &o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, err
		}
		result = append(result, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *orderRepository) attachItems(ctx context.Context, orders []model.Order) error {
	if len(orders) == 0 {
		return nil
	}
	ids := make([]int64, 0, len(orders))
	for _, o := range orders {
		ids = append(ids, o.ID)
	}
	items, err := r.loadItems(ctx, ids)
	if err != nil {
		return err
	}
	for i := range orders {
		orders[i].Items = items[orders[i].ID]
	}
	return nil
}

func (r *orderRepository) loadItems(ctx context.Context, orderIDs []int64) (map[int64][]model.OrderItem, error) {
	const query = `SELECT id, order_id, menu_item_id, item_name, quantity, unit_price, subtotal
                   FROM order_items WHERE order_id = ANY($1) ORDER BY id`
	rows, err := r.storage.pool.Query(ctx, query, orderIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make(map[int64][]model.OrderItem)
	for rows.Next() {
		var item model.OrderItem
		if err := rows.Scan(&item.ID, &item.OrderID, &item.MenuItemID, &item.ItemName, &item.Quantity, &item.UnitPrice, &item.Subtotal); err != nil {
			return nil, err
		}
		result[item.OrderID] = append(result[item.OrderID], item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// WithinTransaction executes function inside transaction boundary.
func (s *Storage) WithinTransaction(ctx context.Context, fn func(pgx.Tx) error) (err error) {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	err = fn(tx)
	return err
}

// HealthCheck verifies database connectivity.
func (s *Storage) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return s.pool.Ping(ctx)
}

// Logger returns storage logger.
func (s *Storage) Logger() *slog.Logger {
	return s.logger
}
