// SPDX-License-Identifier: MIT

// Package sink holds the collaborators that receive engine output:
//   - TextSink receives generated text together with its model.
//   - TableSink receives a Report, the display data of one model's tables.
//
// Implementations:
//   - FileTextSink writes "<dir>/<name>(model<N>).txt".
//   - WriterTextSink writes text to any io.Writer.
//   - YAMLSink encodes reports as YAML documents.
//   - CSVSink flattens reports to one CSV record per value.
//
// Reports carry labelled series (bar charts) and grids (heatmaps); rendering
// them is left to the consumer.
package sink
