package repos

import (
	"log"
	"strings"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

func OpenDB(dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	// every pooled connection to :memory: would otherwise see its own empty database
	if strings.Contains(dsn, ":memory:") {
		db.SetMaxOpenConns(1)
	}
	if err = db.Ping(); err != nil {
		return nil, err
	}

	if err := ensureSchema(db); err != nil {
		return nil, err
	}
	return db, nil
}

func ensureSchema(db *sqlx.DB) error {
	schema := `
CREATE TABLE IF NOT EXISTS toys(
  id TEXT PRIMARY KEY,
  toy_name TEXT NOT NULL DEFAULT '',
  price REAL NOT NULL DEFAULT 0,
  photo_url TEXT NOT NULL DEFAULT '',
  available_quantity INTEGER NOT NULL DEFAULT 0,
  ratings REAL NOT NULL DEFAULT 0,
  description TEXT NOT NULL DEFAULT '',
  category TEXT NOT NULL DEFAULT '',
  seller_email TEXT NOT NULL DEFAULT '',
  created_at TEXT DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_toys_category     ON toys(category);
CREATE INDEX IF NOT EXISTS idx_toys_seller_email ON toys(seller_email);
CREATE INDEX IF NOT EXISTS idx_toys_price        ON toys(price);
`
	_, err := db.Exec(schema)
	return err
}

// SeedDemo inserts a handful of toys when the table is empty.
func SeedDemo(db *sqlx.DB) error {
	var n int
	if err := db.Get(&n, `SELECT COUNT(*) FROM toys`); err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	log.Println("[seed] inserting demo toys")

	tx := db.MustBegin()
	defer func() { _ = tx.Rollback() }()

	tx.MustExec(`INSERT INTO toys(id,toy_name,price,photo_url,available_quantity,ratings,description,category,seller_email) VALUES
	  ('6f1f7c1e-2d8a-4c55-9a4e-0c1b7f5d2a01','Tonka Dump Truck',24.99,'https://img.toystore.test/tonka.jpg',12,4.6,'Steel dump truck','car','alice@toystore.test'),
	  ('6f1f7c1e-2d8a-4c55-9a4e-0c1b7f5d2a02','Police Cruiser',14.50,'https://img.toystore.test/cruiser.jpg',5,4.1,'Pull-back police car','car','bob@toystore.test'),
	  ('6f1f7c1e-2d8a-4c55-9a4e-0c1b7f5d2a03','Fire Engine',32.00,'https://img.toystore.test/fire.jpg',3,4.8,'Ladder truck with siren','truck','alice@toystore.test'),
	  ('6f1f7c1e-2d8a-4c55-9a4e-0c1b7f5d2a04','Monster Truck',19.75,'https://img.toystore.test/monster.jpg',9,4.3,'Big wheels, bigger noise','truck','bob@toystore.test'),
	  ('6f1f7c1e-2d8a-4c55-9a4e-0c1b7f5d2a05','Race Car',11.25,'https://img.toystore.test/race.jpg',20,3.9,'Formula racer','car','alice@toystore.test')`)

	return tx.Commit()
}
