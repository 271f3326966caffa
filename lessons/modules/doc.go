// Package modules is lesson 29: Go modules, versioning and build metadata.
package modules
