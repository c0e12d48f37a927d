// Package server implements the MCP (Model Context Protocol) server for the color tools.
//
// The server speaks JSON-RPC 2.0 over stdio:
//   - Input: JSON-RPC requests on stdin (one per line)
//   - Output: JSON-RPC responses on stdout
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// # Available Tools
//
// Conversion:
//   - color_hex_to_rgb, color_rgb_to_hex
//   - color_rgb_to_hsl, color_hsl_to_rgb
//
// Brightness:
//   - color_lighten, color_darken
//
// Hue wheel:
//   - color_complementary, color_triadic, color_tetradic, color_scheme
//
// Analysis and output:
//   - color_distance: perceptual difference between two colors
//   - color_swatch: render colors as a PNG strip
//   - color_sample_image, color_dominant_colors: read colors from image files
//
// Tools that take a color accept either "hex" ("#rrggbb") or an "rgb"
// object ({"r":0-255,"g":0-255,"b":0-255}).
//
// # Error Handling
//
// Tool failures are returned as JSON-RPC errors with code -32000 and the Go
// error string as data. Malformed tools/call params yield -32602 and unknown
// methods -32601.
package server
