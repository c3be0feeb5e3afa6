// Package table provides the columnar data table consumed by the fitfn
// builders.
//
// A Table holds named float64 columns of equal length. Formulas resolve
// their variables against column names, so a formula like "y ~ age"
// expects the table to contain columns "y" and "age".
package table
