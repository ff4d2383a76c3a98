package repository

import (
	"context"
	"database/sql"
	"strings"

	_ "github.com/mattn/go-sqlite3"

	"github.com/abrezinsky/pubgolf/internal/errors"
	"github.com/abrezinsky/pubgolf/internal/models"
)

// Repository provides data access methods
type Repository struct {
	db *sql.DB
}

// New creates a new Repository, runs migrations and seeds the catalog on
// first run.
func New(dbPath string) (*Repository, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, err
	}

	// Enable foreign key constraints
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		return nil, err
	}

	// SQLite works best with a single connection
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	repo := &Repository{db: db}

	if err := repo.migrate(); err != nil {
		return nil, err
	}
	if err := repo.Seed(context.Background()); err != nil {
		return nil, err
	}

	return repo, nil
}

// DB returns the underlying database connection (for transactions)
func (r *Repository) DB() *sql.DB {
	return r.db
}

// Close closes the database connection
func (r *Repository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

// Ping checks if the database connection is alive
func (r *Repository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

// migrate runs database migrations
func (r *Repository) migrate() error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS pubs (
			id INTEGER PRIMARY KEY,
			name TEXT NOT NULL,
			type TEXT NOT NULL,
			rating REAL NOT NULL DEFAULT 0,
			distance REAL NOT NULL DEFAULT 0,
			latitude REAL NOT NULL DEFAULT 0,
			longitude REAL NOT NULL DEFAULT 0
		)`,
		`CREATE TABLE IF NOT EXISTS courses (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			distance REAL NOT NULL DEFAULT 0,
			duration INTEGER NOT NULL DEFAULT 0,
			difficulty TEXT NOT NULL DEFAULT 'Easy',
			rating REAL NOT NULL DEFAULT 0,
			source TEXT NOT NULL DEFAULT 'seed',
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS course_pubs (
			course_id INTEGER NOT NULL,
			pub_id INTEGER NOT NULL,
			position INTEGER NOT NULL,
			PRIMARY KEY (course_id, position),
			FOREIGN KEY (course_id) REFERENCES courses(id) ON DELETE CASCADE,
			FOREIGN KEY (pub_id) REFERENCES pubs(id)
		)`,
		`CREATE TABLE IF NOT EXISTS players (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS settings (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		)`,
	}

	for _, m := range migrations {
		if _, err := r.db.Exec(m); err != nil {
			return err
		}
	}
	return nil
}

// seedPubs is the starter catalog. The pub list is fixed; courses and the
// roster grow from here.
var seedPubs = []models.Pub{
	{ID: 1, Name: "The Crown & Anchor", Type: "Traditional Pub", Rating: 4.5, Distance: 0.2, Latitude: 51.5136, Longitude: -0.1206},
	{ID: 2, Name: "Brewdog Bar", Type: "Craft Beer", Rating: 4.3, Distance: 0.4, Latitude: 51.5194, Longitude: -0.1022},
	{ID: 3, Name: "The Red Lion", Type: "Sports Bar", Rating: 4.1, Distance: 0.6, Latitude: 51.5064, Longitude: -0.1272},
	{ID: 4, Name: "Craft & Co", Type: "Gastropub", Rating: 4.4, Distance: 0.8, Latitude: 51.5225, Longitude: -0.0877},
	{ID: 5, Name: "The Barrel House", Type: "Whiskey Bar", Rating: 4.2, Distance: 1.0, Latitude: 51.5107, Longitude: -0.1347},
	{ID: 6, Name: "Hops & Barley", Type: "Microbrewery", Rating: 4.6, Distance: 1.2, Latitude: 51.5272, Longitude: -0.0556},
	{ID: 7, Name: "The Local Tavern", Type: "Neighborhood Bar", Rating: 4.0, Distance: 1.4, Latitude: 51.5090, Longitude: -0.1337},
	{ID: 8, Name: "Sunset Rooftop", Type: "Rooftop Bar", Rating: 4.7, Distance: 1.6, Latitude: 51.5112, Longitude: -0.1198},
	{ID: 9, Name: "The Underground", Type: "Cocktail Lounge", Rating: 4.3, Distance: 1.8, Latitude: 51.5033, Longitude: -0.1195},
}

// Seed inserts the starter pubs, sample courses and default player when the
// corresponding tables are empty. Safe to call repeatedly.
func (r *Repository) Seed(ctx context.Context) error {
	var pubCount int
	if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM pubs").Scan(&pubCount); err != nil {
		return err
	}
	if pubCount == 0 {
		for _, p := range seedPubs {
			_, err := r.db.ExecContext(ctx,
				"INSERT INTO pubs (id, name, type, rating, distance, latitude, longitude) VALUES (?, ?, ?, ?, ?, ?, ?)",
				p.ID, p.Name, p.Type, p.Rating, p.Distance, p.Latitude, p.Longitude)
			if err != nil {
				return err
			}
		}
	}

	var courseCount int
	if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM courses").Scan(&courseCount); err != nil {
		return err
	}
	if courseCount == 0 {
		if err := r.seedCourses(ctx); err != nil {
			return err
		}
	}

	var playerCount int
	if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM players").Scan(&playerCount); err != nil {
		return err
	}
	if playerCount == 0 {
		if _, err := r.db.ExecContext(ctx, "INSERT INTO players (name) VALUES ('You')"); err != nil {
			return err
		}
	}

	return nil
}

// seedCourses creates the two sample courses: every pub in walking order,
// and the brewery-focused subset.
func (r *Repository) seedCourses(ctx context.Context) error {
	pubs, err := r.ListPubs(ctx)
	if err != nil {
		return err
	}

	var breweryPubs []models.Pub
	for _, p := range pubs {
		if strings.Contains(p.Type, "Brew") || strings.Contains(p.Type, "Craft") {
			breweryPubs = append(breweryPubs, p)
		}
	}

	seeds := []models.Course{
		{Name: "Downtown Classic", Distance: 2.1, Duration: 180, Difficulty: "Medium", Rating: 4.4, Source: "seed", Pubs: pubs},
		{Name: "Brewery Trail", Distance: 1.5, Duration: 120, Difficulty: "Easy", Rating: 4.6, Source: "seed", Pubs: breweryPubs},
	}
	for _, c := range seeds {
		if _, err := r.CreateCourse(ctx, c); err != nil {
			return err
		}
	}
	return nil
}

// ===== Pubs =====

// ListPubs returns the full catalog ordered by distance
func (r *Repository) ListPubs(ctx context.Context) ([]models.Pub, error) {
	return r.queryPubs(ctx,
		"SELECT id, name, type, rating, distance, latitude, longitude FROM pubs ORDER BY distance, id")
}

// ListPubsWithin returns catalog pubs no further than maxKm away
func (r *Repository) ListPubsWithin(ctx context.Context, maxKm float64) ([]models.Pub, error) {
	return r.queryPubs(ctx,
		"SELECT id, name, type, rating, distance, latitude, longitude FROM pubs WHERE distance <= ? ORDER BY distance, id",
		maxKm)
}

func (r *Repository) queryPubs(ctx context.Context, query string, args ...interface{}) ([]models.Pub, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var pubs []models.Pub
	for rows.Next() {
		var p models.Pub
		if err := rows.Scan(&p.ID, &p.Name, &p.Type, &p.Rating, &p.Distance, &p.Latitude, &p.Longitude); err != nil {
			return nil, err
		}
		pubs = append(pubs, p)
	}
	return pubs, rows.Err()
}

// GetPub returns a single pub by ID
func (r *Repository) GetPub(ctx context.Context, id int) (*models.Pub, error) {
	var p models.Pub
	err := r.db.QueryRowContext(ctx,
		"SELECT id, name, type, rating, distance, latitude, longitude FROM pubs WHERE id = ?", id).
		Scan(&p.ID, &p.Name, &p.Type, &p.Rating, &p.Distance, &p.Latitude, &p.Longitude)
	if err == sql.ErrNoRows {
		return nil, errors.NotFoundf("pub %d not found", id)
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// ===== Courses =====

// ListCourses returns all courses with their pubs in hole order
func (r *Repository) ListCourses(ctx context.Context) ([]models.Course, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT id, name, distance, duration, difficulty, rating, source FROM courses ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var courses []models.Course
	for rows.Next() {
		var c models.Course
		if err := rows.Scan(&c.ID, &c.Name, &c.Distance, &c.Duration, &c.Difficulty, &c.Rating, &c.Source); err != nil {
			return nil, err
		}
		courses = append(courses, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	pubsByCourse, err := r.coursePubs(ctx)
	if err != nil {
		return nil, err
	}
	for i := range courses {
		courses[i].Pubs = pubsByCourse[courses[i].ID]
		courses[i].Holes = len(courses[i].Pubs)
	}
	return courses, nil
}

// coursePubs loads every course's pub sequence in one query, keyed by course ID
func (r *Repository) coursePubs(ctx context.Context) (map[int][]models.Pub, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT cp.course_id, p.id, p.name, p.type, p.rating, p.distance, p.latitude, p.longitude
		FROM course_pubs cp
		JOIN pubs p ON p.id = cp.pub_id
		ORDER BY cp.course_id, cp.position`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make(map[int][]models.Pub)
	for rows.Next() {
		var courseID int
		var p models.Pub
		if err := rows.Scan(&courseID, &p.ID, &p.Name, &p.Type, &p.Rating, &p.Distance, &p.Latitude, &p.Longitude); err != nil {
			return nil, err
		}
		result[courseID] = append(result[courseID], p)
	}
	return result, rows.Err()
}

// GetCourse returns a single course with its pubs in hole order
func (r *Repository) GetCourse(ctx context.Context, id int) (*models.Course, error) {
	var c models.Course
	err := r.db.QueryRowContext(ctx,
		"SELECT id, name, distance, duration, difficulty, rating, source FROM courses WHERE id = ?", id).
		Scan(&c.ID, &c.Name, &c.Distance, &c.Duration, &c.Difficulty, &c.Rating, &c.Source)
	if err == sql.ErrNoRows {
		return nil, errors.NotFoundf("course %d not found", id)
	}
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT p.id, p.name, p.type, p.rating, p.distance, p.latitude, p.longitude
		FROM course_pubs cp
		JOIN pubs p ON p.id = cp.pub_id
		WHERE cp.course_id = ?
		ORDER BY cp.position`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var p models.Pub
		if err := rows.Scan(&p.ID, &p.Name, &p.Type, &p.Rating, &p.Distance, &p.Latitude, &p.Longitude); err != nil {
			return nil, err
		}
		c.Pubs = append(c.Pubs, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	c.Holes = len(c.Pubs)
	return &c, nil
}

// CreateCourse inserts a course and its pub sequence atomically. The stored
// hole count is always derived from the pub rows, never from course.Holes.
func (r *Repository) CreateCourse(ctx context.Context, course models.Course) (int64, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	source := course.Source
	if source == "" {
		source = "custom"
	}
	res, err := tx.ExecContext(ctx,
		"INSERT INTO courses (name, distance, duration, difficulty, rating, source) VALUES (?, ?, ?, ?, ?, ?)",
		course.Name, course.Distance, course.Duration, course.Difficulty, course.Rating, source)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}

	for pos, pub := range course.Pubs {
		_, err := tx.ExecContext(ctx,
			"INSERT INTO course_pubs (course_id, pub_id, position) VALUES (?, ?, ?)",
			id, pub.ID, pos)
		if err != nil {
			return 0, err
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return id, nil
}

// ===== Players =====

// ListPlayers returns the roster in insertion order
func (r *Repository) ListPlayers(ctx context.Context) ([]models.Player, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT id, name FROM players ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var players []models.Player
	for rows.Next() {
		var p models.Player
		if err := rows.Scan(&p.ID, &p.Name); err != nil {
			return nil, err
		}
		players = append(players, p)
	}
	return players, rows.Err()
}

// CreatePlayer adds a player to the roster
func (r *Repository) CreatePlayer(ctx context.Context, name string) (int64, error) {
	res, err := r.db.ExecContext(ctx, "INSERT INTO players (name) VALUES (?)", name)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// DeletePlayer removes a player from the roster
func (r *Repository) DeletePlayer(ctx context.Context, id int) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM players WHERE id = ?", id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return errors.NotFoundf("player %d not found", id)
	}
	return nil
}

// ReplacePlayers swaps the whole roster for the given names atomically and
// returns the new roster with assigned IDs.
func (r *Repository) ReplacePlayers(ctx context.Context, names []string) ([]models.Player, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM players"); err != nil {
		return nil, err
	}

	players := make([]models.Player, 0, len(names))
	for _, name := range names {
		res, err := tx.ExecContext(ctx, "INSERT INTO players (name) VALUES (?)", name)
		if err != nil {
			return nil, err
		}
		id, err := res.LastInsertId()
		if err != nil {
			return nil, err
		}
		players = append(players, models.Player{ID: int(id), Name: name})
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return players, nil
}

// ===== Settings =====

// GetSetting retrieves a setting value by key
func (r *Repository) GetSetting(ctx context.Context, key string) (string, error) {
	var value string
	err := r.db.QueryRowContext(ctx, "SELECT value FROM settings WHERE key = ?", key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", ErrNotFound
	}
	if err != nil {
		return "", err
	}
	return value, nil
}

// SetSetting stores a setting value, replacing any existing one
func (r *Repository) SetSetting(ctx context.Context, key, value string) error {
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO settings (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value",
		key, value)
	return err
}

// GetStats returns catalog and roster counts for the organizer dashboard
func (r *Repository) GetStats(ctx context.Context) (map[string]interface{}, error) {
	stats := make(map[string]interface{})

	counts := []struct {
		key   string
		query string
	}{
		{"pubs", "SELECT COUNT(*) FROM pubs"},
		{"courses", "SELECT COUNT(*) FROM courses"},
		{"custom_courses", "SELECT COUNT(*) FROM courses WHERE source != 'seed'"},
		{"players", "SELECT COUNT(*) FROM players"},
	}
	for _, c := range counts {
		var n int
		if err := r.db.QueryRowContext(ctx, c.query).Scan(&n); err != nil {
			return nil, err
		}
		stats[c.key] = n
	}
	return stats, nil
}

// clearableTables whitelists the tables the organizer may reset.
// Course rows cascade their course_pubs entries.
var clearableTables = map[string]bool{
	"courses":  true,
	"players":  true,
	"settings": true,
}

// ClearTable deletes all rows from a whitelisted table
func (r *Repository) ClearTable(ctx context.Context, table string) error {
	if !clearableTables[table] {
		return ErrInvalidTable
	}
	_, err := r.db.ExecContext(ctx, "DELETE FROM "+table)
	return err
}
