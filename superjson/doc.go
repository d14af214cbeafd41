package superjson

//Package superjson implements serialization and unserialization of
//the library's results. Its planned use is the communication of
//superposition results to other, independent programs which can be
//written in languages other than Go, as long as those languages
//implement a way of serializing and unserializing JSON data.
//superjson also implements the transmission of options, so an external
//program can send the settings for an alignment to a program using this
//library and later collect the results, for instance, via UNIX pipes.
//Results can also travel zstd-compressed, which starts to matter when
//whole ensembles go through a pipe.
