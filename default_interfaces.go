package flapcam

import "github.com/edwinsyarief/flapcam/shaker"

var defaultShaker *shaker.Random
