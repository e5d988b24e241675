// Package testsupport provides shared helpers for package tests: temp-dir
// configs and pre-opened stores with cleanup registered.
package testsupport
