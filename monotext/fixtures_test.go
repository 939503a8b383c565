package monotext_test

import (
	"github.com/clktmr/vintage/fonts"
	"github.com/clktmr/vintage/fonts/font12x16"
	"github.com/clktmr/vintage/fonts/font24x32"
	"github.com/clktmr/vintage/fonts/font6x12"
	"github.com/clktmr/vintage/fonts/font6x8"
	"github.com/clktmr/vintage/fonts/font8x16"
)

// Reference renderings of short strings, drawn in the on color with the
// baseline of the first line at the font's baseline row. ' ' is an unset
// pixel and '#' a set one.
var glyphFixtures = []struct {
	font *fonts.MonoFont
	text string
	want []string
}{
	{font: font6x8.Font, text: "Mm", want: []string{
		"#   #       ",
		"## ##       ",
		"# # # ## #  ",
		"# # # # # # ",
		"#   # #   # ",
		"#   # #   # ",
		"#   # #   # ",
		"            ",
	}},
	{font: font6x8.Font, text: " ~", want: []string{
		"       ## # ",
		"      #  #  ",
	}},
	{font: font6x8.Font, text: "$y", want: []string{
		"  #         ",
		" ####       ",
		"# #   #   # ",
		" ###  #   # ",
		"  # # #   # ",
		"####   #### ",
		"  #       # ",
		"       ###  ",
	}},
	{font: font6x8.Font, text: "¡ÿ", want: []string{
		"  #    # #  ",
		"            ",
		"  #   #   # ",
		"  #   #   # ",
		"  #   #   # ",
		"  #    #### ",
		"  #       # ",
		"       ###  ",
		"            ",
	}},
	{font: font6x8.Font, text: "\x00\r", want: []string{
		" ###       ",
		"#   #      ",
		"    #      ",
		"   #       ",
		"  #        ",
		"           ",
		"  #        ",
	}},
	{font: font6x8.Font, text: "\x7f\u00a0", want: []string{
		" ###   ### ",
		"#   # #   #",
		"    #     #",
		"   #     # ",
		"  #     #  ",
		"           ",
		"  #     #  ",
	}},
	{font: font6x8.Font, text: "Ā💣", want: []string{
		" ###   ### ",
		"#   # #   #",
		"    #     #",
		"   #     # ",
		"  #     #  ",
		"           ",
		"  #     #  ",
	}},
	{font: font6x12.Font, text: "Mm", want: []string{
		"            ",
		"#   #       ",
		"## ##       ",
		"## ##       ",
		"# # # ####  ",
		"# # # # # # ",
		"#   # # # # ",
		"#   # # # # ",
		"#   # # # # ",
		"#   # # # # ",
		"            ",
		"            ",
	}},
	{font: font6x12.Font, text: " ~", want: []string{
		"        # # ",
		"       #### ",
		"       # #  ",
	}},
	{font: font6x12.Font, text: "$y", want: []string{
		"            ",
		"  #         ",
		" ###        ",
		"# # #       ",
		"# #    #  # ",
		" ###   #  # ",
		"  # #  #  # ",
		"  # #  #  # ",
		"# # #  #  # ",
		" ###    ### ",
		"  #       # ",
		"        ##  ",
	}},
	{font: font6x12.Font, text: "\x00\r", want: []string{
		"            ",
		"  ##        ",
		" #  #       ",
		" #  #       ",
		"    #       ",
		"   #        ",
		"  #         ",
		"  #         ",
		"            ",
		"  #         ",
		"            ",
		"            ",
	}},
	{font: font6x12.Font, text: "\x7f\u00a0", want: []string{
		"            ",
		"  ##    ##  ",
		" #  #  #  # ",
		" #  #  #  # ",
		"    #     # ",
		"   #     #  ",
		"  #     #   ",
		"  #     #   ",
		"            ",
		"  #     #   ",
		"            ",
		"            ",
	}},
	{font: font6x12.Font, text: "Ā💣", want: []string{
		"            ",
		"  ##    ##  ",
		" #  #  #  # ",
		" #  #  #  # ",
		"    #     # ",
		"   #     #  ",
		"  #     #   ",
		"  #     #   ",
		"            ",
		"  #     #   ",
		"            ",
		"            ",
	}},
	{font: font8x16.Font, text: "Mm", want: []string{
		"                ",
		"                ",
		"##   ##         ",
		"### ###         ",
		"#######         ",
		"####### ### ##  ",
		"## # ## ####### ",
		"##   ## ## # ## ",
		"##   ## ## # ## ",
		"##   ## ## # ## ",
		"##   ## ## # ## ",
		"##   ## ##   ## ",
		"                ",
		"                ",
		"                ",
		"                ",
	}},
	{font: font8x16.Font, text: " ~", want: []string{
		"                ",
		"         ### ## ",
		"        ## ###  ",
	}},
	{font: font8x16.Font, text: "$y", want: []string{
		"   ##                   ",
		"   ##                   ",
		" #####                  ",
		"##   ##                 ",
		"##    #                 ",
		"##      ##   ##         ",
		" #####  ##   ##         ",
		"     ## ##   ##         ",
		"     ## ##   ##         ",
		"#    ## ##   ##         ",
		"##   ## ##   ##         ",
		" #####   ######         ",
		"   ##        ##         ",
		"   ##       ##          ",
		"        #####           ",
		"                        ",
	}},
	{font: font8x16.Font, text: "¡ÿ", want: []string{
		"                        ",
		"        ##   ##         ",
		"   ##   ##   ##         ",
		"   ##                   ",
		"                        ",
		"   ##   ##   ##         ",
		"   ##   ##   ##         ",
		"   ##   ##   ##         ",
		"  ####  ##   ##         ",
		"  ####  ##   ##         ",
		"  ####  ##   ##         ",
		"   ##    ######         ",
		"             ##         ",
		"            ##          ",
		"        #####           ",
		"                        ",
	}},
	{font: font8x16.Font, text: "\x00\r", want: []string{
		"                        ",
		"                        ",
		" #####                  ",
		"##   ##                 ",
		"##   ##                 ",
		"    ##                  ",
		"   ##                   ",
		"   ##                   ",
		"   ##                   ",
		"                        ",
		"   ##                   ",
		"   ##                   ",
		"                        ",
		"                        ",
		"                        ",
		"                        ",
	}},
	{font: font8x16.Font, text: "\x7f\u00a0", want: []string{
		"                        ",
		"                        ",
		" #####   #####          ",
		"##   ## ##   ##         ",
		"##   ## ##   ##         ",
		"    ##      ##          ",
		"   ##      ##           ",
		"   ##      ##           ",
		"   ##      ##           ",
		"                        ",
		"   ##      ##           ",
		"   ##      ##           ",
		"                        ",
		"                        ",
		"                        ",
		"                        ",
	}},
	{font: font8x16.Font, text: "Ā💣", want: []string{
		"                        ",
		"                        ",
		" #####   #####          ",
		"##   ## ##   ##         ",
		"##   ## ##   ##         ",
		"    ##      ##          ",
		"   ##      ##           ",
		"   ##      ##           ",
		"   ##      ##           ",
		"                        ",
		"   ##      ##           ",
		"   ##      ##           ",
		"                        ",
		"                        ",
		"                        ",
		"                        ",
	}},
	{font: font12x16.Font, text: "Mm", want: []string{
		"##      ##              ",
		"##      ##              ",
		"####  ####              ",
		"####  ####              ",
		"##  ##  ##  ####  ##    ",
		"##  ##  ##  ####  ##    ",
		"##  ##  ##  ##  ##  ##  ",
		"##  ##  ##  ##  ##  ##  ",
		"##      ##  ##      ##  ",
		"##      ##  ##      ##  ",
		"##      ##  ##      ##  ",
		"##      ##  ##      ##  ",
		"##      ##  ##      ##  ",
		"##      ##  ##      ##  ",
	}},
	{font: font12x16.Font, text: " ~", want: []string{
		"              ####  ##  ",
		"              ####  ##  ",
		"            ##    ##    ",
		"            ##    ##    ",
	}},
	{font: font12x16.Font, text: "$y", want: []string{
		"    ##                  ",
		"    ##                  ",
		"  ########              ",
		"  ########              ",
		"##  ##      ##      ##  ",
		"##  ##      ##      ##  ",
		"  ######    ##      ##  ",
		"  ######    ##      ##  ",
		"    ##  ##  ##      ##  ",
		"    ##  ##  ##      ##  ",
		"########      ########  ",
		"########      ########  ",
		"    ##              ##  ",
		"    ##              ##  ",
		"              ######    ",
		"              ######    ",
	}},
	{font: font12x16.Font, text: "¡ÿ", want: []string{
		"    ##        ##  ##    ",
		"    ##        ##  ##    ",
		"                        ",
		"                        ",
		"    ##      ##      ##  ",
		"    ##      ##      ##  ",
		"    ##      ##      ##  ",
		"    ##      ##      ##  ",
		"    ##      ##      ##  ",
		"    ##      ##      ##  ",
		"    ##        ########  ",
		"    ##        ########  ",
		"    ##              ##  ",
		"    ##              ##  ",
		"              ######    ",
		"              ######    ",
	}},
	{font: font12x16.Font, text: "\x00\r", want: []string{
		"  ######                ",
		"  ######                ",
		"##      ##              ",
		"##      ##              ",
		"        ##              ",
		"        ##              ",
		"      ##                ",
		"      ##                ",
		"    ##                  ",
		"    ##                  ",
		"                        ",
		"                        ",
		"    ##                  ",
		"    ##                  ",
		"                        ",
		"                        ",
	}},
	{font: font12x16.Font, text: "\x7f\u00a0", want: []string{
		"  ######      ######    ",
		"  ######      ######    ",
		"##      ##  ##      ##  ",
		"##      ##  ##      ##  ",
		"        ##          ##  ",
		"        ##          ##  ",
		"      ##          ##    ",
		"      ##          ##    ",
		"    ##          ##      ",
		"    ##          ##      ",
		"                        ",
		"                        ",
		"    ##          ##      ",
		"    ##          ##      ",
		"                        ",
		"                        ",
	}},
	{font: font12x16.Font, text: "Ā💣", want: []string{
		"  ######      ######    ",
		"  ######      ######    ",
		"##      ##  ##      ##  ",
		"##      ##  ##      ##  ",
		"        ##          ##  ",
		"        ##          ##  ",
		"      ##          ##    ",
		"      ##          ##    ",
		"    ##          ##      ",
		"    ##          ##      ",
		"                        ",
		"                        ",
		"    ##          ##      ",
		"    ##          ##      ",
		"                        ",
		"                        ",
	}},
	{font: font24x32.Font, text: "Mm", want: []string{
		"####            ####                          ",
		"####            ####                          ",
		"####            ####                          ",
		"####            ####                          ",
		"########    ########                          ",
		"########    ########                          ",
		"########    ########                          ",
		"########    ########                          ",
		"####    ####    ####    ########    ####      ",
		"####    ####    ####    ########    ####      ",
		"####    ####    ####    ########    ####      ",
		"####    ####    ####    ########    ####      ",
		"####    ####    ####    ####    ####    ####  ",
		"####    ####    ####    ####    ####    ####  ",
		"####    ####    ####    ####    ####    ####  ",
		"####    ####    ####    ####    ####    ####  ",
		"####            ####    ####            ####  ",
		"####            ####    ####            ####  ",
		"####            ####    ####            ####  ",
		"####            ####    ####            ####  ",
		"####            ####    ####            ####  ",
		"####            ####    ####            ####  ",
		"####            ####    ####            ####  ",
		"####            ####    ####            ####  ",
		"####            ####    ####            ####  ",
		"####            ####    ####            ####  ",
		"####            ####    ####            ####  ",
		"####            ####    ####            ####  ",
	}},
	{font: font24x32.Font, text: " ~", want: []string{
		"                            ########    #### ",
		"                            ########    #### ",
		"                            ########    #### ",
		"                            ########    #### ",
		"                        ####        ####     ",
		"                        ####        ####     ",
		"                        ####        ####     ",
		"                        ####        ####     ",
	}},
	{font: font24x32.Font, text: "$y", want: []string{
		"        ####                                 ",
		"        ####                                 ",
		"        ####                                 ",
		"        ####                                 ",
		"    ################                         ",
		"    ################                         ",
		"    ################                         ",
		"    ################                         ",
		"####    ####            ####            #### ",
		"####    ####            ####            #### ",
		"####    ####            ####            #### ",
		"####    ####            ####            #### ",
		"    ############        ####            #### ",
		"    ############        ####            #### ",
		"    ############        ####            #### ",
		"    ############        ####            #### ",
		"        ####    ####    ####            #### ",
		"        ####    ####    ####            #### ",
		"        ####    ####    ####            #### ",
		"        ####    ####    ####            #### ",
		"################            ################ ",
		"################            ################ ",
		"################            ################ ",
		"################            ################ ",
		"        ####                            #### ",
		"        ####                            #### ",
		"        ####                            #### ",
		"        ####                            #### ",
		"                            ############     ",
		"                            ############     ",
		"                            ############     ",
		"                            ############     ",
	}},
	{font: font24x32.Font, text: "¡ÿ", want: []string{
		"        ####                ####    ####         ",
		"        ####                ####    ####         ",
		"        ####                ####    ####         ",
		"        ####                ####    ####         ",
		"                                                 ",
		"                                                 ",
		"                                                 ",
		"                                                 ",
		"        ####            ####            ####     ",
		"        ####            ####            ####     ",
		"        ####            ####            ####     ",
		"        ####            ####            ####     ",
		"        ####            ####            ####     ",
		"        ####            ####            ####     ",
		"        ####            ####            ####     ",
		"        ####            ####            ####     ",
		"        ####            ####            ####     ",
		"        ####            ####            ####     ",
		"        ####            ####            ####     ",
		"        ####            ####            ####     ",
		"        ####                ################     ",
		"        ####                ################     ",
		"        ####                ################     ",
		"        ####                ################     ",
		"        ####                            ####     ",
		"        ####                            ####     ",
		"        ####                            ####     ",
		"        ####                            ####     ",
		"                            ############         ",
		"                            ############         ",
		"                            ############         ",
		"                            ############         ",
	}},
	{font: font24x32.Font, text: "\x00\r", want: []string{
		"    ############                            ",
		"    ############                            ",
		"    ############                            ",
		"    ############                            ",
		"####            ####                        ",
		"####            ####                        ",
		"####            ####                        ",
		"####            ####                        ",
		"                ####                        ",
		"                ####                        ",
		"                ####                        ",
		"                ####                        ",
		"            ####                            ",
		"            ####                            ",
		"            ####                            ",
		"            ####                            ",
		"        ####                                ",
		"        ####                                ",
		"        ####                                ",
		"        ####                                ",
		"                                            ",
		"                                            ",
		"                                            ",
		"                                            ",
		"        ####                                ",
		"        ####                                ",
		"        ####                                ",
		"        ####                                ",
	}},
	{font: font24x32.Font, text: "\x7f\u00a0", want: []string{
		"    ############            ############     ",
		"    ############            ############     ",
		"    ############            ############     ",
		"    ############            ############     ",
		"####            ####    ####            #### ",
		"####            ####    ####            #### ",
		"####            ####    ####            #### ",
		"####            ####    ####            #### ",
		"                ####                    #### ",
		"                ####                    #### ",
		"                ####                    #### ",
		"                ####                    #### ",
		"            ####                    ####     ",
		"            ####                    ####     ",
		"            ####                    ####     ",
		"            ####                    ####     ",
		"        ####                    ####         ",
		"        ####                    ####         ",
		"        ####                    ####         ",
		"        ####                    ####         ",
		"                                             ",
		"                                             ",
		"                                             ",
		"                                             ",
		"        ####                    ####         ",
		"        ####                    ####         ",
		"        ####                    ####         ",
		"        ####                    ####         ",
	}},
	{font: font24x32.Font, text: "Ā💣", want: []string{
		"    ############            ############     ",
		"    ############            ############     ",
		"    ############            ############     ",
		"    ############            ############     ",
		"####            ####    ####            #### ",
		"####            ####    ####            #### ",
		"####            ####    ####            #### ",
		"####            ####    ####            #### ",
		"                ####                    #### ",
		"                ####                    #### ",
		"                ####                    #### ",
		"                ####                    #### ",
		"            ####                    ####     ",
		"            ####                    ####     ",
		"            ####                    ####     ",
		"            ####                    ####     ",
		"        ####                    ####         ",
		"        ####                    ####         ",
		"        ####                    ####         ",
		"        ####                    ####         ",
		"                                             ",
		"                                             ",
		"                                             ",
		"                                             ",
		"        ####                    ####         ",
		"        ####                    ####         ",
		"        ####                    ####         ",
		"        ####                    ####         ",
	}},}
