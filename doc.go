// Package makequote turns somebody's quote into an image.
//
// # Overview
//
// makequote renders a quote image from a username, an avatar and a quote
// string: a dark 1920x1080 frame with the avatar on the left fading into
// the background, the quote centered on the right and the username
// below it. Fonts are supplied by the caller as raw bytes; TTF, OTF and
// TTC collections are accepted, and CJK text wraps correctly alongside
// Latin.
//
// # Quick Start
//
//	import (
//	    "os"
//
//	    "github.com/makequote/makequote"
//	    "github.com/makequote/makequote/fonts"
//	)
//
//	// Parse the fonts once; they are reused across renders.
//	bold, _ := os.ReadFile("/usr/share/fonts/noto-cjk/NotoSansCJK-Bold.ttc")
//	light, _ := os.ReadFile("/usr/share/fonts/noto-cjk/NotoSansCJK-Light.ttc")
//	boldSrc, _ := fonts.Load(bold)
//	lightSrc, _ := fonts.Load(light)
//	set, _ := fonts.NewSet(boldSrc, fonts.WithLight(lightSrc))
//
//	producer, _ := makequote.NewProducer(set)
//
//	cfg, _ := makequote.NewQuoteConfig(
//	    "V5电竞俱乐部中单选手 Otto",
//	    "大家好，今天来点大家想看的东西。",
//	    makequote.AvatarFile("./avatar.png"),
//	)
//
//	buf, _ := producer.MakeImage(cfg)
//	os.WriteFile("quote.jpg", buf, 0o644)
//
// # Architecture
//
// The pipeline is strictly linear: font loading (package fonts), text
// layout (package text), compositing (internal/canvas) and encoding, in
// that order. A Producer holds only immutable state, so one instance
// can serve concurrent MakeImage calls.
//
// # Determinism
//
// Rendering is fully deterministic: the same producer configuration and
// quote input always produce byte-identical output.
package makequote
