// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types holds the domain types shared across pipeline stages.
package types

import "time"

// RawPost is a candidate item fetched from a source before classification.
type RawPost struct {
	// Title is the post headline.
	Title string `json:"title" yaml:"title"`

	// Body is the post's self text. May be empty for link posts.
	Body string `json:"body" yaml:"body"`

	// URL is the canonical link to the post. Used as the dedup key downstream.
	URL string `json:"url" yaml:"url"`

	// Channel is the originating channel tag (e.g. the subreddit name).
	Channel string `json:"channel" yaml:"channel"`

	// Score is the source's popularity number (upvotes).
	Score int `json:"score" yaml:"score"`

	// Date is the timestamp of the source content, not of ingestion.
	Date time.Time `json:"date" yaml:"date"`
}

// PainPoint is the persisted unit of collected feedback: a candidate post
// that passed the pain-point gate, with its heuristic scores attached.
//
// IsLiked and IsUnliked are tri-state: nil means no feedback has been
// recorded. At most one of them is ever true.
type PainPoint struct {
	// ID is an opaque unique identifier assigned at creation.
	ID string `json:"id" yaml:"id"`

	// Text is the combined title and body of the source post.
	Text string `json:"text" yaml:"text"`

	// Title is the post headline.
	Title string `json:"title" yaml:"title"`

	// SentimentScore is the lexical sentiment in [-1, 1], computed once
	// at ingestion and never recomputed.
	SentimentScore float64 `json:"sentiment_score" yaml:"sentiment_score"`

	// BusinessKeywords lists the vocabulary terms found in Text, in
	// vocabulary scan order.
	BusinessKeywords []string `json:"business_keywords" yaml:"business_keywords"`

	// Category is one label from the fixed category vocabulary.
	Category string `json:"category" yaml:"category"`

	// URL is the canonical source link; unique within the store.
	URL string `json:"url" yaml:"url"`

	// Date is the timestamp of the source content.
	Date time.Time `json:"date" yaml:"date"`

	// Source is a human-readable provenance tag (e.g. "r/startups").
	Source string `json:"source" yaml:"source"`

	// Score is the externally supplied popularity number, distinct from
	// SentimentScore.
	Score int `json:"score" yaml:"score"`

	IsLiked   *bool `json:"is_liked" yaml:"is_liked"`
	IsUnliked *bool `json:"is_unliked" yaml:"is_unliked"`
}

// Liked reports whether the record has been explicitly liked.
func (p PainPoint) Liked() bool {
	return p.IsLiked != nil && *p.IsLiked
}

// Unliked reports whether the record has been explicitly unliked.
func (p PainPoint) Unliked() bool {
	return p.IsUnliked != nil && *p.IsUnliked
}
