// Package pixel implements the 32-bit packed color format and an image buffer
// built on it.
//
// A [Packed] color is written as 0xRRGGBBAA and always stored with alpha in
// byte 0, blue in byte 1, green in byte 2 and red in byte 3, independent of
// the host byte order. Note that this is the reverse of the RGBA32 layout
// used by PNG and OpenGL, which expect red at byte 0.
//
// The types are compatible with Go's native [color.Color] and [image.Image] /
// [draw.Image] interfaces.
package pixel
