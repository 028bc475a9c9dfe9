// Package crawling extracts keyword-bearing sentences from Naver blog
// posts. It loads dynamically-rendered pages with a headless browser,
// locates the content frame inside Naver's nested-iframe layout, segments
// the frame text into sentences, selects the sentence that satisfies a
// multi-keyword match, and persists the structured result keyed by
// source URL.
//
// This package contains domain types and interfaces following Ben
// Johnson's Standard Package Layout. Implementations live in
// subdirectories named after their primary dependency (e.g., sqlite/,
// rod/) or their concern (extract/, naver/).
package crawling
