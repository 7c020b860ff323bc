// Package results exports benchmark results.
//
// A [pipeline.Result] can be written as the CSV table consumed by plotting
// scripts, as JSON, or stored as a document in MongoDB for comparing runs
// over time.
//
// # CSV
//
// [WriteCSV] emits one row per dataset file:
//
//	node_count,average_time,is_isomorphic
//	10,0.000004,true
//	10,0.000003,false
//
// average_time is the mean duration of one pairwise check in seconds. Rows
// of the isomorphic set come first, followed by the non-isomorphic set when
// it was measured.
//
// # MongoDB
//
// [MongoSink] upserts each result keyed by its run ID:
//
//	sink, err := results.NewMongoSink(ctx, results.MongoConfig{URI: uri})
//	defer sink.Close(ctx)
//	err = sink.Store(ctx, result)
//
// [pipeline.Result]: github.com/matzehuels/isobench/pkg/pipeline.Result
package results
