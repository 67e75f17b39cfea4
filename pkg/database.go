package spectra

import (
	"fmt"
	"strconv"

	_ "github.com/go-sql-driver/mysql"
	sqlx "github.com/jmoiron/sqlx"
)

func ConnectToDatabase(user string, pass string, host string, dbname string) (*sqlx.DB, error) {
	port := "3306"
	dbURI := fmt.Sprintf("%s:%s@(%s:%s)/%s?parseTime=true", user, pass, host, port, dbname)
	db, err := sqlx.Connect("mysql", dbURI)
	return db, err
}

// HalfLifeFromDB looks up the half-life of an isotope by name.
func HalfLifeFromDB(db *sqlx.DB, isotope string) (float64, error) {
	if configuration.Verbosity > 0 {
		logger.Info(fmt.Sprintf("Reading half-life of %s from database", isotope), "database")
	}
	var halfLife float64
	query := "SELECT HalfLife FROM IsotopeHalfLife WHERE Isotope = ?"
	if err := db.Get(&halfLife, query, isotope); err != nil {
		return 0, fmt.Errorf("error querying half-life for %q: %w", isotope, err)
	}
	return halfLife, nil
}

// ResolveHalfLife turns a manifest half-life column into a value. Numeric
// columns are parsed directly; anything else is treated as an isotope
// name and resolved through the database when one is configured.
func ResolveHalfLife(db *sqlx.DB, value string) (float64, error) {
	if halfLife, err := strconv.ParseFloat(value, 64); err == nil {
		return halfLife, nil
	}
	if configuration.NoDB || db == nil {
		return 0, fmt.Errorf("half-life %q is not numeric and database lookups are disabled", value)
	}
	return HalfLifeFromDB(db, value)
}
