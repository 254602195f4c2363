package storage

import (
	"context"
	"database/sql"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"

	"fitness-bot/internal/domain/entity"
	"fitness-bot/internal/domain/port"
)

//go:embed schema.sql
var schemaSQL string

// Поддерживаемые драйверы
const (
	DriverSQLite   = "sqlite3"
	DriverPostgres = "postgres"
)

// DefaultSQLiteDSN открывает базу в памяти процесса, общую для всех соединений пула.
const DefaultSQLiteDSN = "file::memory:?cache=shared"

type dialect struct {
	selectUser string
	upsertUser string
}

var dialects = map[string]dialect{
	DriverSQLite: {
		selectUser: `SELECT chat_id, dialog, account FROM users WHERE user_id = ?`,
		upsertUser: `INSERT INTO users (user_id, chat_id, dialog, account) VALUES (?, ?, ?, ?)
			ON CONFLICT (user_id) DO UPDATE SET chat_id = excluded.chat_id, dialog = excluded.dialog, account = excluded.account`,
	},
	DriverPostgres: {
		selectUser: `SELECT chat_id, dialog, account FROM users WHERE user_id = $1`,
		upsertUser: `INSERT INTO users (user_id, chat_id, dialog, account) VALUES ($1, $2, $3, $4)
			ON CONFLICT (user_id) DO UPDATE SET chat_id = EXCLUDED.chat_id, dialog = EXCLUDED.dialog, account = EXCLUDED.account`,
	},
}

// SQLUserRepository хранит пользователей в SQLite или PostgreSQL.
// Черновик диалога и учётная запись сохраняются как JSON.
type SQLUserRepository struct {
	db      *sql.DB
	dialect dialect
}

// NewSQLUserRepository открывает базу и применяет схему.
func NewSQLUserRepository(driver, dsn string) (*SQLUserRepository, error) {
	d, ok := dialects[driver]
	if !ok {
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}
	if dsn == "" {
		if driver != DriverSQLite {
			return nil, errors.New("database DSN not set")
		}
		dsn = DefaultSQLiteDSN
	}

	slog.Debug("Opening user database", "driver", driver)
	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if driver == DriverSQLite {
		// SQLite не любит параллельную запись через shared cache
		db.SetMaxOpenConns(1)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}
	slog.Debug("User database schema applied", "driver", driver)

	return &SQLUserRepository{db: db, dialect: d}, nil
}

// Close закрывает соединение с базой.
func (r *SQLUserRepository) Close() error {
	return r.db.Close()
}

// Get возвращает пользователя по ID, создаёт нового если не найден
func (r *SQLUserRepository) Get(ctx context.Context, userID, chatID int64) (*entity.User, error) {
	user, err := r.load(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user != nil {
		return user, nil
	}

	user = entity.NewUser(userID, chatID)
	if err := r.Save(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Save сохраняет состояние пользователя
func (r *SQLUserRepository) Save(ctx context.Context, user *entity.User) error {
	dialog, err := json.Marshal(user.Dialog)
	if err != nil {
		return fmt.Errorf("encode dialog: %w", err)
	}

	var account sql.NullString
	if user.Account != nil {
		data, err := json.Marshal(user.Account)
		if err != nil {
			return fmt.Errorf("encode account: %w", err)
		}
		account = sql.NullString{String: string(data), Valid: true}
	}

	if _, err := r.db.ExecContext(ctx, r.dialect.upsertUser, user.ID, user.ChatID, string(dialog), account); err != nil {
		slog.Error("SQLUserRepository Save failed", "error", err, "userID", user.ID)
		return fmt.Errorf("save user %d: %w", user.ID, err)
	}
	return nil
}

// load читает пользователя; возвращает nil, если записи нет.
func (r *SQLUserRepository) load(ctx context.Context, userID int64) (*entity.User, error) {
	var (
		chatID  int64
		dialog  string
		account sql.NullString
	)
	err := r.db.QueryRowContext(ctx, r.dialect.selectUser, userID).Scan(&chatID, &dialog, &account)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		slog.Error("SQLUserRepository load failed", "error", err, "userID", userID)
		return nil, fmt.Errorf("load user %d: %w", userID, err)
	}

	user := &entity.User{ID: userID, ChatID: chatID}
	if err := json.Unmarshal([]byte(dialog), &user.Dialog); err != nil {
		return nil, fmt.Errorf("decode dialog of user %d: %w", userID, err)
	}
	if account.Valid {
		user.Account = &entity.Account{}
		if err := json.Unmarshal([]byte(account.String), user.Account); err != nil {
			return nil, fmt.Errorf("decode account of user %d: %w", userID, err)
		}
	}
	return user, nil
}

var _ port.UserRepository = (*SQLUserRepository)(nil)
