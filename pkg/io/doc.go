// Package io provides JSON import and export for contribution datasets,
// plus file output for rendered documents.
//
// # Dataset Format
//
// A dataset records where the contribution data came from and the days
// themselves:
//
//	{
//	  "username": "octocat",
//	  "source": "github",
//	  "fetched_at": "2026-08-30T12:00:00Z",
//	  "records": [
//	    {"date": "2025-08-24", "count": 2, "level": 1}
//	  ]
//	}
//
// The source field is "github" for API data and "mock" for generated
// data. Records may appear in any order; [ReadJSON] validates each one
// (level in range, no duplicate dates) and returns them sorted.
//
// This format is what `pacgrid fetch` writes and `pacgrid render`
// reads, so a calendar can be fetched once and re-rendered with
// different themes without touching the network.
package io
