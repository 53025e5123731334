// Package wallet persists the machine identity on disk.
//
// The wallet file is a JSON envelope holding the scrypt salt and a
// chacha20poly1305 ciphertext of the serialised identity. It lives at a
// well-known path under the pickaxe home directory; absence of the file is
// not an error but the signal that account creation has to run first.
package wallet
