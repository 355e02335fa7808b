// Package main provides the entry point for sortbench.
//
// sortbench generates random alphanumeric items and reports the average
// time five sorting algorithms take to sort them.
package main
