// Package batch executes the queries of a loaded query file.
//
// Every query is answered independently: read the input, parse it with the
// query's alphabet, expand it into tiles if asked, then run one search through
// the query layer. Queries run concurrently (errgroup, bounded by the file's
// workers setting) and log their progress through logrus.
//
// The run has no partial-success mode: the first failing query cancels the
// scheduling of the rest and its error, naming the query, is returned.
package batch
