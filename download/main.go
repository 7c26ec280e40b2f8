package main

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/google/uuid"
)

// The download tool pulls every playthrough uploaded by the game into local
// files, one folder per user. The files can be passed to the game as its only
// argument to replay them.
func main() {
	outDir := "."
	if len(os.Args) == 2 {
		outDir = os.Args[1]
	}
	DownloadRecordings(outDir)
}

func DownloadRecordings(outDir string) {
	db := ConnectToDbSql()
	defer func(db *sql.DB) { Check(db.Close()) }(db)

	rows, err := db.Query("SELECT " +
		"upload_moment, " +
		"user, " +
		"release_version, " +
		"simulation_version, " +
		"input_version, " +
		"id, " +
		"playthrough " +
		"FROM cratepush_playthroughs")
	Check(err)
	defer func(rows *sql.Rows) { Check(rows.Close()) }(rows)

	dbRows := []dbRow{}
	for rows.Next() {
		row := dbRow{}
		err = rows.Scan(&row.uploadMoment, &row.user, &row.releaseVersion,
			&row.simulationVersion, &row.inputVersion, &row.id, &row.data)
		Check(err)
		dbRows = append(dbRows, row)
	}
	Check(rows.Err())

	for i := range dbRows {
		dir := filepath.Join(outDir, dbRows[i].user)
		Check(os.MkdirAll(dir, 0755))
		WriteFile(filepath.Join(dir, PlaythroughFilename(dbRows[i])),
			dbRows[i].data)
	}
	fmt.Printf("downloaded %d playthroughs\n", len(dbRows))
}

// PlaythroughFilename names a playthrough after the moment it was uploaded,
// the start of its id and the versions needed to replay it, e.g.
// 20250102-150405-1b4e28ba.cratepush-1-1. Each reset uploads the whole
// history so far, so a playthrough usually shows up several times, with
// growing histories.
func PlaythroughFilename(r dbRow) string {
	m := r.uploadMoment
	return fmt.Sprintf("%d%02d%02d-%02d%02d%02d-%s.cratepush-%d-%d",
		m.Year(), m.Month(), m.Day(), m.Hour(), m.Minute(), m.Second(),
		r.id.String()[:8], r.simulationVersion, r.inputVersion)
}

func ConnectToDbSql() *sql.DB {
	cfg := mysql.Config{
		User:                 os.Getenv("CRATEPUSH_DBUSER"),
		Passwd:               os.Getenv("CRATEPUSH_DBPASSWORD"),
		Net:                  "tcp",
		Addr:                 os.Getenv("CRATEPUSH_DBADDR"),
		DBName:               os.Getenv("CRATEPUSH_DBNAME"),
		AllowNativePasswords: true,
		ParseTime:            true,
	}

	db, err := sql.Open("mysql", cfg.FormatDSN())
	Check(err)
	err = db.Ping()
	Check(err)
	return db
}

func Check(e error) {
	if e != nil {
		panic(e)
	}
}

type dbRow struct {
	uploadMoment      time.Time
	user              string
	releaseVersion    int64
	simulationVersion int64
	inputVersion      int64
	id                uuid.UUID
	data              []byte
}

func WriteFile(name string, data []byte) {
	err := os.WriteFile(name, data, 0644)
	Check(err)
}
