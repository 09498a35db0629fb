// Package config provides configuration management for cbr-grabber.
//
// Settings live in an INI file (settings.ini by default) with a single
// [Settings] section:
//
//	[Settings]
//	url                 = https://www.peppercarrot.com/0_sources/ep01_Potion-of-Flight/low-res/
//	positive_check_text = en_
//	negative_check_text =
//	num_digits          = 3
//	zip_filename        = Pepper_and_Carrot
//	allowed_file_types  = jpeg, png
//	max_sleep_interval  = 20
//	delete_temp_folder  = True
//
// # Loading
//
// LoadOrCreate is what the commands use: a missing file is replaced by the
// defaults and read back.
//
//	settings, created, err := config.LoadOrCreate("settings.ini")
//
// Values are only converted, never validated. A key that is missing or
// cannot be converted yields a *FormatError.
package config
