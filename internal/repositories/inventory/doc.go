// Package inventory provides persistence for inventory items.
//
// The Repository interface covers the CRUD operations used by the store and
// the low-stock query (quantity <= threshold). Two implementations exist:
// SQLiteRepository (the default local database) and PostgresRepository.
// Both bind to a dbx.DBTX, so they work on a *sql.DB as well as inside a
// transaction.
//
// Listings are ordered by id, which makes them stable between calls.
//
// Item names are unique; inserting or renaming onto a taken name yields
// common.ErrDuplicateName. Update methods report the number of rows affected
// and leave the "no such id" interpretation to the caller.
package inventory
