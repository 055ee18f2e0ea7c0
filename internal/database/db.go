// Package database persists analyzed objects, observations and detections
// in PostgreSQL.
package database

import (
	"database/sql"
	"fmt"
	"math"
	"time"

	_ "github.com/lib/pq"

	"github.com/skywatch/cosmoscan/models"
)

// DB represents a database connection
type DB struct {
	*sql.DB
}

// ConnectionParams holds PostgreSQL connection parameters
type ConnectionParams struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// New creates a new database connection and ensures the schema exists.
func New(params ConnectionParams) (*DB, error) {
	connStr := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		params.Host, params.Port, params.User, params.Password, params.DBName, params.SSLMode,
	)

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, err
	}

	if err := db.Ping(); err != nil {
		return nil, err
	}

	if err := createTables(db); err != nil {
		return nil, err
	}

	return &DB{db}, nil
}

// createTables creates the necessary tables if they don't exist
func createTables(db *sql.DB) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS objects (
			id SERIAL PRIMARY KEY,
			name TEXT NOT NULL UNIQUE,
			ra DOUBLE PRECISION,
			dec DOUBLE PRECISION,
			mission TEXT,
			first_observed TIMESTAMP NOT NULL DEFAULT NOW(),
			last_observed TIMESTAMP NOT NULL DEFAULT NOW(),
			total_observations INTEGER NOT NULL DEFAULT 0
		)`,
		`CREATE TABLE IF NOT EXISTS observations (
			id SERIAL PRIMARY KEY,
			object_id INTEGER NOT NULL REFERENCES objects(id),
			observed_at TIMESTAMP NOT NULL DEFAULT NOW(),
			cadence TEXT,
			data_points INTEGER,
			span_days DOUBLE PRECISION
		)`,
		`CREATE TABLE IF NOT EXISTS planets (
			id SERIAL PRIMARY KEY,
			observation_id INTEGER NOT NULL REFERENCES observations(id),
			period_days DOUBLE PRECISION NOT NULL,
			transit_depth DOUBLE PRECISION NOT NULL,
			duration_hours DOUBLE PRECISION,
			earth_radii DOUBLE PRECISION,
			confidence DOUBLE PRECISION,
			status TEXT,
			new_discovery BOOLEAN NOT NULL DEFAULT FALSE,
			created_at TIMESTAMP NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS comets (
			id SERIAL PRIMARY KEY,
			observation_id INTEGER NOT NULL REFERENCES observations(id),
			detection_time DOUBLE PRECISION NOT NULL,
			brightness_increase DOUBLE PRECISION,
			activity_type TEXT,
			velocity_deg_day DOUBLE PRECISION,
			confidence DOUBLE PRECISION,
			new_discovery BOOLEAN NOT NULL DEFAULT FALSE,
			created_at TIMESTAMP NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS meteors (
			id SERIAL PRIMARY KEY,
			observation_id INTEGER NOT NULL REFERENCES observations(id),
			detection_time DOUBLE PRECISION NOT NULL,
			duration_hours DOUBLE PRECISION,
			amplitude DOUBLE PRECISION,
			event_type TEXT,
			confidence DOUBLE PRECISION,
			created_at TIMESTAMP NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS transients (
			id SERIAL PRIMARY KEY,
			observation_id INTEGER NOT NULL REFERENCES observations(id),
			type TEXT,
			start_time DOUBLE PRECISION,
			peak_time DOUBLE PRECISION,
			end_time DOUBLE PRECISION,
			duration_days DOUBLE PRECISION,
			amplitude_mag DOUBLE PRECISION,
			created_at TIMESTAMP NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS discoveries (
			id SERIAL PRIMARY KEY,
			observation_id INTEGER NOT NULL REFERENCES observations(id),
			type TEXT NOT NULL,
			status TEXT NOT NULL,
			confidence DOUBLE PRECISION,
			parameters TEXT,
			verified BOOLEAN NOT NULL DEFAULT FALSE,
			notes TEXT,
			created_at TIMESTAMP NOT NULL DEFAULT NOW()
		)`,
		`CREATE INDEX IF NOT EXISTS idx_objects_name ON objects(name)`,
		`CREATE INDEX IF NOT EXISTS idx_planets_confidence ON planets(confidence)`,
		`CREATE INDEX IF NOT EXISTS idx_discoveries_status ON discoveries(status)`,
	}

	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// SaveObject inserts the object or, if it already exists, bumps its
// observation counter and refreshes its coordinates. Returns the object id.
func (db *DB) SaveObject(name string, ra, dec float64, mission string) (int64, error) {
	var id int64
	var totalObs int
	err := db.QueryRow(
		`SELECT id, total_observations FROM objects WHERE name = $1`, name,
	).Scan(&id, &totalObs)

	switch {
	case err == sql.ErrNoRows:
		err = db.QueryRow(
			`INSERT INTO objects (name, ra, dec, mission, total_observations)
			 VALUES ($1, $2, $3, $4, 1) RETURNING id`,
			name, ra, dec, mission,
		).Scan(&id)
		return id, err
	case err != nil:
		return 0, err
	}

	_, err = db.Exec(
		`UPDATE objects
		 SET last_observed = NOW(), total_observations = $1, ra = $2, dec = $3, mission = $4
		 WHERE id = $5`,
		totalObs+1, ra, dec, mission, id,
	)
	return id, err
}

// SaveObservation records one analyzed observation and returns its id.
func (db *DB) SaveObservation(objectID int64, cadence string, dataPoints int, spanDays float64) (int64, error) {
	var id int64
	err := db.QueryRow(
		`INSERT INTO observations (object_id, cadence, data_points, span_days)
		 VALUES ($1, $2, $3, $4) RETURNING id`,
		objectID, cadence, dataPoints, spanDays,
	).Scan(&id)
	return id, err
}

// SavePlanets stores planet candidates. Candidates above 85% confidence are
// flagged as new discoveries; above 70% as candidates. The planet radius is
// estimated from the transit depth assuming a Sun-sized host.
func (db *DB) SavePlanets(observationID int64, planets []models.PlanetCandidate) error {
	for _, p := range planets {
		newDiscovery := p.Confidence > 85
		status := "DETECTED"
		switch {
		case newDiscovery:
			status = "NEW"
		case p.Confidence > 70:
			status = "CANDIDATE"
		}
		earthRadii := math.Sqrt(p.TransitDepth) * 109

		_, err := db.Exec(
			`INSERT INTO planets (
				observation_id, period_days, transit_depth, duration_hours,
				earth_radii, confidence, status, new_discovery
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
			observationID, p.PeriodDays, p.TransitDepth, p.TransitDurationHours,
			earthRadii, p.Confidence, status, newDiscovery,
		)
		if err != nil {
			return err
		}
	}
	return nil
}

// SaveComets stores comet events; confidence above 0.8 marks a new
// discovery.
func (db *DB) SaveComets(observationID int64, comets []models.CometEvent) error {
	for _, c := range comets {
		_, err := db.Exec(
			`INSERT INTO comets (
				observation_id, detection_time, brightness_increase, activity_type,
				velocity_deg_day, confidence, new_discovery
			) VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			observationID, c.DetectionTime, c.BrightnessIncrease, c.ActivityType,
			c.VelocityDegDay, c.Confidence, c.Confidence > 0.8,
		)
		if err != nil {
			return err
		}
	}
	return nil
}

// SaveMeteors stores meteor and fast-transient events.
func (db *DB) SaveMeteors(observationID int64, meteors []models.MeteorEvent) error {
	for _, m := range meteors {
		_, err := db.Exec(
			`INSERT INTO meteors (
				observation_id, detection_time, duration_hours, amplitude,
				event_type, confidence
			) VALUES ($1, $2, $3, $4, $5, $6)`,
			observationID, m.DetectionTime, m.DurationHours, m.Amplitude,
			m.EventType, m.Confidence,
		)
		if err != nil {
			return err
		}
	}
	return nil
}

// SaveTransients stores transient events.
func (db *DB) SaveTransients(observationID int64, transients []models.TransientEvent) error {
	for _, t := range transients {
		_, err := db.Exec(
			`INSERT INTO transients (
				observation_id, type, start_time, peak_time, end_time,
				duration_days, amplitude_mag
			) VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			observationID, t.Type, t.StartTime, t.PeakTime, t.EndTime,
			t.DurationDays, t.Amplitude,
		)
		if err != nil {
			return err
		}
	}
	return nil
}

// Discovery is one entry in the potential-discoveries table.
type Discovery struct {
	ID            int64
	ObservationID int64
	Type          string
	Status        string
	Confidence    float64
	Parameters    string // JSON blob of the raw detection
	Verified      bool
	Notes         string
	CreatedAt     time.Time

	// Populated by NewDiscoveries from the joined object row.
	ObjectName string
	RA         float64
	Dec        float64
}

// SaveDiscovery stores a potential discovery.
func (db *DB) SaveDiscovery(observationID int64, d Discovery) error {
	_, err := db.Exec(
		`INSERT INTO discoveries (observation_id, type, status, confidence, parameters)
		 VALUES ($1, $2, $3, $4, $5)`,
		observationID, d.Type, d.Status, d.Confidence, d.Parameters,
	)
	return err
}

// NewDiscoveries lists discoveries with NEW or CANDIDATE status, highest
// confidence first.
func (db *DB) NewDiscoveries(limit int) ([]Discovery, error) {
	rows, err := db.Query(
		`SELECT d.id, d.observation_id, d.type, d.status, d.confidence,
		        COALESCE(d.parameters, ''), d.verified, COALESCE(d.notes, ''),
		        d.created_at, o.name, COALESCE(o.ra, 0), COALESCE(o.dec, 0)
		 FROM discoveries d
		 JOIN observations obs ON d.observation_id = obs.id
		 JOIN objects o ON obs.object_id = o.id
		 WHERE d.status IN ('NEW', 'CANDIDATE')
		 ORDER BY d.confidence DESC, d.created_at DESC
		 LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var discoveries []Discovery
	for rows.Next() {
		var d Discovery
		if err := rows.Scan(
			&d.ID, &d.ObservationID, &d.Type, &d.Status, &d.Confidence,
			&d.Parameters, &d.Verified, &d.Notes, &d.CreatedAt,
			&d.ObjectName, &d.RA, &d.Dec,
		); err != nil {
			return nil, err
		}
		discoveries = append(discoveries, d)
	}
	return discoveries, rows.Err()
}

// Stats summarizes the database contents.
type Stats struct {
	TotalObjects      int
	TotalObservations int
	TotalPlanets      int
	NewPlanets        int
	TotalComets       int
	TotalMeteors      int
	NewDiscoveries    int
	Candidates        int
}

// GeneralStats returns row counts across the main tables.
func (db *DB) GeneralStats() (*Stats, error) {
	stats := &Stats{}
	counts := []struct {
		query string
		dest  *int
	}{
		{`SELECT COUNT(*) FROM objects`, &stats.TotalObjects},
		{`SELECT COUNT(*) FROM observations`, &stats.TotalObservations},
		{`SELECT COUNT(*) FROM planets`, &stats.TotalPlanets},
		{`SELECT COUNT(*) FROM planets WHERE new_discovery`, &stats.NewPlanets},
		{`SELECT COUNT(*) FROM comets`, &stats.TotalComets},
		{`SELECT COUNT(*) FROM meteors`, &stats.TotalMeteors},
		{`SELECT COUNT(*) FROM discoveries WHERE status = 'NEW'`, &stats.NewDiscoveries},
		{`SELECT COUNT(*) FROM discoveries WHERE status = 'CANDIDATE'`, &stats.Candidates},
	}
	for _, c := range counts {
		if err := db.QueryRow(c.query).Scan(c.dest); err != nil {
			return nil, err
		}
	}
	return stats, nil
}
