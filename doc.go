// Package overlay renders an animated status overlay (a walking sprite over a
// small backdrop, with a bold caption such as "正在备份") into a block-linear
// RGBA4444 surface.
//
// Drawing goes through a [Canvas] bound to the back buffer a [Display] hands
// out. Pixel addresses are translated with [PixelOffset]; colours are four
// 4-bit channels packed with [Pack] and mixed with [BlendChannel], which
// truncates.
//
// # Quick start
//
// A [FrameLoop] owns the whole frame: acquire, compose, draw, release, sleep.
//
//	d, _ := overlay.NewMemoryDisplay(overlay.DefaultDisplayConfig())
//	loop, _ := overlay.NewFrameLoop(overlay.DefaultConfig(), d, nil)
//	loop.Run()
//
// [MemoryDisplay] keeps frames in memory; the ebitenhost package shows them in
// a desktop window, and sshpreview streams them to ssh clients.
//
// # Drawing primitives
//
// All Canvas operations clip to the canvas and do nothing while no buffer is
// bound, so a frame is never aborted halfway:
//
//	c := overlay.NewCanvas(448, 720)
//	c.Bind(buf)
//	c.FillScreen(overlay.SkyBlue, overlay.BlendOverwrite)
//	overlay.Blit(c, overlay.DefaultAtlas().Bitmap(overlay.AssetBush), 10, 10, 6, 8)
//	overlay.StatusFont.DrawTextBold(c, "正在备份", 56, 265, style, overlay.White)
//	c.Unbind()
//
// # Logging
//
// The package is silent by default. Install a logger with [SetLogger] to see
// lifecycle messages, teardown warnings and, with Config.Debug, per-second
// frame statistics.
package overlay
