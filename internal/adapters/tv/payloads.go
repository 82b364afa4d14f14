package tv

// registerMessage builds the handshake frame. The manifest mirrors what the
// TV expects from a paired remote-control client; the client-key is the
// pairing key obtained when the TV first approved this client.
func registerMessage(key string) map[string]any {
	return map[string]any{
		"type": "register",
		"id":   "register_0",
		"payload": map[string]any{
			"forcePairing": false,
			"pairingType":  "PROMPT",
			"client-key":   key,
			"manifest": map[string]any{
				"manifestVersion": 1,
				"permissions": []string{
					"LAUNCH",
					"CONTROL_AUDIO",
					"CONTROL_DISPLAY",
					"CONTROL_POWER",
					"READ_SETTINGS",
					"WRITE_SETTINGS",
					"READ_INSTALLED_APPS",
					"CONTROL_INPUT_MEDIA_PLAYBACK",
				},
			},
		},
	}
}
