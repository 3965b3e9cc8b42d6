// Package catalog contains the services and retail products offered by the
// stores, with their fixed or variable prices.
package catalog
