// Package table provides Table, an in-memory container for small-to-medium tabular
// datasets. Tables infer and coerce cell types per column, and support cheap row
// selection through copy-on-write views. Serialization to and from delimited text,
// JSON lines, binary blobs and text reports lives in the datasource package.
package table
