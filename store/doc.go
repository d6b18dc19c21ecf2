// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store persists users, element selections and polygons.

Handlers depend on the UserRepository, ElementRepository and
PolygonRepository interfaces; SQLStore implements all three on top of
database/sql. Every multi-statement operation runs in one transaction, so
a failed polygon creation leaves no polygon, polygon element or user link
behind.

Lookups that find nothing return ErrNotFound or ErrUserNotFound. Linking
an element id that is not in the catalog returns ErrUnknownElement and
changes nothing.
*/
package store
