// Package file provides Sources which read serialized tables from files on disk.
// Each file is parsed in its entirety, and files matched by the same glob are
// loaded in lexical order.
package file
