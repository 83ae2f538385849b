// Package models contains the GORM persistence models for stock orders, their
// items and history, the movement ledger, and the read-mostly views onto the
// catalog (products) and order submission (sales_orders) tables.
//
// Domain types carry no GORM tags; each model converts with ToDomain and
// FromDomain.
package models
